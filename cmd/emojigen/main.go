// Command emojigen fetches the GitHub emoji alias table, reconciles it with
// the bundled emoji datasets and writes the github_emojis.json and
// github_custom_emojis.json files the picker UI consumes.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"emojigen/internal/artifact"
	"emojigen/internal/config"
	"emojigen/internal/dataset"
	"emojigen/internal/github"
	"emojigen/internal/pipeline"
	"emojigen/internal/safeio"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}

	ctx := context.Background()

	log.Info().Msg("fetching github emoji data")
	githubEmojis, err := github.NewClient(cfg.GitHubToken).Emojis(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("could not retrieve github emoji data")
	}
	log.Info().Int("count", len(githubEmojis)).Msg("github emoji data fetched")

	dataFS, err := safeio.NewSafeFS(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("data directory")
	}
	entries, err := dataset.LoadMetadata(dataFS, dataset.MetadataFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load emoji metadata")
	}
	names, err := dataset.LoadNames(dataFS, dataset.NamesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load emoji names")
	}
	keywords, err := dataset.LoadKeywords(dataFS, dataset.KeywordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load emoji keywords")
	}
	customKeywords, err := dataset.LoadCustomKeywords(dataFS, dataset.CustomKeywordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load custom emoji keywords")
	}

	result, err := pipeline.Run(pipeline.Inputs{
		Metadata:       entries,
		Names:          names,
		Keywords:       keywords,
		CustomKeywords: customKeywords,
		GitHubEmojis:   githubEmojis,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("pipeline failed")
	}

	files, err := result.Encode()
	if err != nil {
		log.Fatal().Err(err).Msg("encode artifacts")
	}

	if cfg.DryRun {
		log.Info().Msg("dry run: all validation passed, no files written")
		return
	}

	if err := pipeline.WriteFiles(files, cfg.OutDir); err != nil {
		log.Fatal().Err(err).Msg("write artifacts")
	}
	log.Info().Str("dir", cfg.OutDir).Msg("emoji data files created")

	if cfg.Artifact.Enabled {
		store, err := artifact.NewS3Store(artifact.S3Config{
			Endpoint:  cfg.Artifact.Endpoint,
			Region:    cfg.Artifact.Region,
			AccessKey: cfg.Artifact.AccessKey,
			SecretKey: cfg.Artifact.SecretKey,
			Bucket:    cfg.Artifact.Bucket,
			UseSSL:    cfg.Artifact.UseSSL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("artifact store")
		}
		for name, content := range files {
			if err := store.Put(ctx, name, content); err != nil {
				log.Fatal().Err(err).Str("file", name).Msg("upload artifact")
			}
			log.Info().Str("file", name).Str("bucket", cfg.Artifact.Bucket).Msg("artifact uploaded")
		}
	}
}
