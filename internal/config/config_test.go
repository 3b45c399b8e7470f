package config

import (
	"reflect"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/imgvet")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("AppEnv = %q, want development", cfg.AppEnv)
	}
	if cfg.AppPort != 8080 {
		t.Errorf("AppPort = %d, want 8080", cfg.AppPort)
	}
	if cfg.OCRLanguages != "eng" {
		t.Errorf("OCRLanguages = %q, want eng", cfg.OCRLanguages)
	}
	if cfg.OCRPageSegMode != 6 {
		t.Errorf("OCRPageSegMode = %d, want 6", cfg.OCRPageSegMode)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 30s", cfg.ShutdownTimeout)
	}
	if !cfg.RateLimitUploadEnabled {
		t.Error("RateLimitUploadEnabled = false, want true")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	if _, err := Load(); err == nil {
		t.Error("Load() with missing DATABASE_URL should fail")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("OCR_PAGE_SEG_MODE", "3")
	t.Setenv("MAX_BATCH_IMAGES", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
	if cfg.AppPort != 9090 {
		t.Errorf("AppPort = %d, want 9090", cfg.AppPort)
	}
	if cfg.OCRPageSegMode != 3 {
		t.Errorf("OCRPageSegMode = %d, want 3", cfg.OCRPageSegMode)
	}
	if cfg.MaxBatchImages != 5 {
		t.Errorf("MaxBatchImages = %d, want 5", cfg.MaxBatchImages)
	}
}

func TestGetOCRLanguages(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "eng", []string{"eng"}},
		{"multiple with spaces", "eng, ara , deu", []string{"eng", "ara", "deu"}},
		{"trailing comma", "eng,", []string{"eng"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{OCRLanguages: tt.value}
			got := cfg.GetOCRLanguages()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetOCRLanguages() = %v, want %v", got, tt.want)
			}
		})
	}
}
