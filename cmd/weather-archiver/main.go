package main

import (
	"context"
	"log"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/i474232898/weather-archiver/internal/archiver"
	"github.com/i474232898/weather-archiver/internal/config"
	"github.com/i474232898/weather-archiver/internal/report"
	"github.com/i474232898/weather-archiver/internal/storage"
	"github.com/i474232898/weather-archiver/internal/weather"
)

func main() {
	// Load configuration. Missing secrets abort here, before any network
	// or storage call.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	rep := report.NewLogReporter()

	ctx := context.Background()

	// Credentials and region come from the SDK's ambient discovery chain.
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("failed to load AWS config: %v", err)
	}

	// Shared HTTP client for outbound weather API calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	fetcher := weather.NewClient(httpClient, cfg.OpenWeatherAPIKey)

	store := storage.NewBucketStore(s3.NewFromConfig(awsCfg), cfg.BucketName, awsCfg.Region, rep)

	arch := archiver.New(fetcher, store, rep, os.Stdout)
	arch.EnsureBucket(ctx)
	arch.Run(ctx, cfg.Cities)
}
