package config

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the full runtime configuration of the generator.
type Config struct {
	DryRun      bool
	DataDir     string
	OutDir      string
	GitHubToken string
	Artifact    ArtifactConfig
}

// ArtifactConfig enables uploading the generated files to an S3-compatible
// bucket. Disabled unless an endpoint is configured.
type ArtifactConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Load reads flags and environment. GITHUB_TOKEN is mandatory: anonymous
// GitHub API rate limits are too low for reliable runs, so its absence is a
// hard stop rather than a silent anonymous fallback.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dry := flag.Bool("dry", false, "run every validation but write no files")
	dataDir := flag.String("data", "data", "directory containing the bundled emoji datasets")
	outDir := flag.String("out", "src/data", "directory the generated JSON files are written to")
	flag.Parse()

	token := strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
	if token == "" {
		return nil, errors.New("GITHUB_TOKEN is not set")
	}

	return &Config{
		DryRun:      *dry,
		DataDir:     *dataDir,
		OutDir:      *outDir,
		GitHubToken: token,
		Artifact:    loadArtifactConfig(),
	}, nil
}

func loadArtifactConfig() ArtifactConfig {
	endpoint := strings.TrimSpace(os.Getenv("ARTIFACT_S3_ENDPOINT"))
	return ArtifactConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_REGION")), "us-east-1"),
		AccessKey: strings.TrimSpace(os.Getenv("ARTIFACT_S3_ACCESS_KEY")),
		SecretKey: strings.TrimSpace(os.Getenv("ARTIFACT_S3_SECRET_KEY")),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_BUCKET")), "emoji-data"),
		UseSSL:    resolveArtifactUseSSL(),
	}
}

func resolveArtifactUseSSL() bool {
	raw := strings.TrimSpace(os.Getenv("ARTIFACT_S3_USE_SSL"))
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
