package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/huntersfinds/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.CloseDelayMS, convey.ShouldEqual, 300)
				convey.So(cfg.ModalStackLimit, convey.ShouldEqual, 50)
				convey.So(cfg.CategoryAverages, convey.ShouldHaveLength, 4)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("HUNTERS_CLOSE_DELAY_MS", "10")
			_ = os.Setenv("HUNTERS_MODAL_STACK_LIMIT", "5")
			_ = os.Setenv("HUNTERS_RECORD_SUBMISSIONS", "true")
			_ = os.Setenv("HUNTERS_LOG_LEVEL", "debug")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.CloseDelayMS, convey.ShouldEqual, 10)
				convey.So(cfg.ModalStackLimit, convey.ShouldEqual, 5)
				convey.So(cfg.RecordSubmissions, convey.ShouldBeTrue)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			tmpFile := createTempConfigFile(`
close_delay_ms: 150
queue_size: 64
category_averages:
  ramen: 16.5
  cheeseburger: 13
`)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("HUNTERS_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values should replace the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.CloseDelayMS, convey.ShouldEqual, 150)
				convey.So(cfg.QueueSize, convey.ShouldEqual, 64)
				convey.So(cfg.ModalStackLimit, convey.ShouldEqual, 50) // default
				convey.So(cfg.CategoryAverages, convey.ShouldResemble, map[string]float64{
					"ramen":        16.5,
					"cheeseburger": 13,
				})
			})
		})

		convey.Convey("When both file and environment variables are set", func() {
			tmpFile := createTempConfigFile("close_delay_ms: 150\nmodal_stack_limit: 8\n")
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("HUNTERS_CONFIG", tmpFile)
			_ = os.Setenv("HUNTERS_CLOSE_DELAY_MS", "20")

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.CloseDelayMS, convey.ShouldEqual, 20)
				convey.So(cfg.ModalStackLimit, convey.ShouldEqual, 8)
			})
		})

		convey.Convey("When loading an explicit path", func() {
			tmpFile := createTempConfigFile("record_submissions: true\n")
			defer func() { _ = os.Remove(tmpFile) }()

			cfg, err := config.LoadFile(ctx, tmpFile)

			convey.Convey("Then the file should be applied without HUNTERS_CONFIG", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.RecordSubmissions, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with an invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("HUNTERS_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a non-existent file", func() {
			_ = os.Setenv("HUNTERS_CONFIG", "/non/existent/file.yaml")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("HUNTERS_CLOSE_DELAY_MS", "soon")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When a loaded value breaks validation", func() {
			_ = os.Setenv("HUNTERS_MODAL_STACK_LIMIT", "0")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return ErrInvalidConfig", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"HUNTERS_CONFIG",
		"HUNTERS_CLOSE_DELAY_MS",
		"HUNTERS_MODAL_STACK_LIMIT",
		"HUNTERS_RECORD_SUBMISSIONS",
		"HUNTERS_LOG_LEVEL",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "huntersfinds-config-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}
	if err := tmpFile.Close(); err != nil {
		panic(err)
	}
	return tmpFile.Name()
}
