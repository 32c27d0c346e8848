package config

import (
	"os"
	"testing"
)

func TestLoad_RequiresMongoURI(t *testing.T) {
	os.Unsetenv("MONGODB_URI")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error when MONGODB_URI is missing")
	}
}

func TestLoad_WithMongoURI(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	defer os.Unsetenv("MONGODB_URI")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("expected MONGODB_URI to be set, got %s", cfg.MongoURI)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}

	if cfg.MongoDatabase != "hospital" {
		t.Errorf("expected default database 'hospital', got %s", cfg.MongoDatabase)
	}

	if cfg.DBMaxPoolSize != 10 {
		t.Errorf("expected default max pool size 10, got %d", cfg.DBMaxPoolSize)
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}

func TestConfig_Validate(t *testing.T) {
	c := &Config{MongoURI: "mongodb://localhost:27017", MongoDatabase: "hospital", DBMaxPoolSize: 10}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.MongoDatabase = ""
	if err := c.Validate(); err == nil {
		t.Error("expected error for empty database name")
	}
}
