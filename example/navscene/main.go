// Command navscene generates a flat triangulated ground mesh, draws wander
// destinations around a point on it, and logs where they land. It exercises
// the full pipeline: mesh validation, the in-range filter, area-weighted face
// selection and the rejection loop.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/akmonengine/wander"
	"github.com/akmonengine/wander/mesh"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML scene config")
	flag.Parse()

	cfg, err := Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := newLogger(cfg.Logging)
	defer log.Sync()

	vertices, indices := groundMesh(cfg.Ground)
	m, err := mesh.New(vertices, indices)
	if err != nil {
		log.Fatal("invalid ground mesh", zap.Error(err))
	}

	log.Info("scene ready",
		zap.Int("vertices", len(vertices)),
		zap.Int("faces", m.TriangleCount()),
		zap.Float64("radius", cfg.Query.Radius),
	)

	sampler := wander.NewSampler(m)
	sampler.Rand = rand.New(rand.NewSource(cfg.Run.Seed))

	center := mgl64.Vec3{cfg.Query.Center[0], cfg.Query.Center[1], cfg.Query.Center[2]}
	radiusSqr := cfg.Query.Radius * cfg.Query.Radius

	fallbacks := 0
	maxDistSqr := 0.0
	for i := 0; i < cfg.Run.Samples; i++ {
		point, err := sampler.SampleInSphere(center, cfg.Query.Radius)
		if err != nil {
			log.Fatal("sampling failed", zap.Error(err))
		}

		distSqr := point.Sub(center).LenSqr()
		if point == center {
			fallbacks++
		} else if distSqr > maxDistSqr {
			maxDistSqr = distSqr
		}

		if distSqr >= radiusSqr {
			log.Warn("destination outside sphere",
				zap.Int("sample", i),
				zap.Float64("distance_sqr", distSqr),
			)
		}

		log.Debug("destination",
			zap.Int("sample", i),
			zap.Float64s("point", point[:]),
		)
	}

	log.Info("done",
		zap.Int("samples", cfg.Run.Samples),
		zap.Int("fallbacks", fallbacks),
		zap.Float64("max_distance_sqr", maxDistSqr),
	)
}

// newLogger builds a console logger, teeing into a rotated file when
// configured.
func newLogger(cfg LoggingConfig) *zap.Logger {
	level := zapcore.InfoLevel
	_ = level.Set(cfg.Level)

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(os.Stdout), level),
	}

	if cfg.LogFile != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(fileWriter), level))
	}

	return zap.New(zapcore.NewTee(cores...))
}

// groundMesh builds a flat grid of width×depth quads in the XZ plane, each
// split along its diagonal into two triangles.
func groundMesh(cfg GroundConfig) ([]mgl64.Vec3, []int) {
	cols := cfg.Width + 1
	rows := cfg.Depth + 1

	vertices := make([]mgl64.Vec3, 0, cols*rows)
	for z := 0; z < rows; z++ {
		for x := 0; x < cols; x++ {
			vertices = append(vertices, mgl64.Vec3{float64(x) * cfg.Spacing, 0, float64(z) * cfg.Spacing})
		}
	}

	indices := make([]int, 0, cfg.Width*cfg.Depth*6)
	for z := 0; z < cfg.Depth; z++ {
		for x := 0; x < cfg.Width; x++ {
			topLeft := z*cols + x
			topRight := topLeft + 1
			bottomLeft := topLeft + cols
			bottomRight := bottomLeft + 1

			indices = append(indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}

	return vertices, indices
}
