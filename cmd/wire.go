package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	beepaudio "github.com/bnema/podium/internal/adapters/audio/beep"
	pointsrender "github.com/bnema/podium/internal/adapters/render/points"
	"github.com/bnema/podium/internal/adapters/schedule/ticker"
	tomlstore "github.com/bnema/podium/internal/adapters/store/toml"
	"github.com/bnema/podium/internal/application"
	"github.com/bnema/podium/internal/config"
	"github.com/bnema/podium/internal/domain"
	"github.com/bnema/podium/internal/logging"
	"github.com/bnema/podium/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type app struct {
	config         config.Config
	logger         zerolog.Logger
	notes          *application.NotesService
	points         *application.PointsService
	scheduler      ports.Scheduler
	player         ports.TonePlayer
	pointsRenderer func([]domain.PointEntry, domain.PointsSummary, pointsrender.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	store, err := tomlstore.NewStore(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("wire record store: %w", err)
	}
	logger.Debug().Str("path", store.Path()).Msg("record store ready")

	var player ports.TonePlayer = ports.SilentPlayer{}
	if cfg.Audio.Enabled {
		player = beepaudio.NewPlayer()
	}

	clock := ports.SystemClock{}

	return &app{
		config:         cfg,
		logger:         logger,
		notes:          application.NewNotesService(store, clock),
		points:         application.NewPointsService(store, clock),
		scheduler:      ticker.Scheduler{},
		player:         player,
		pointsRenderer: pointsrender.Render,
		now:            clock.Now,
	}, nil
}

func (a *app) newTimer(totalSeconds int, sound bool) *application.TimerController {
	return application.NewTimerController(a.scheduler, a.player, application.TimerOptions{
		TotalSeconds: totalSeconds,
		SoundEnabled: sound,
		Logger:       &a.logger,
	})
}

// closeAudio releases the output device if the player opened one.
func (a *app) closeAudio() {
	if closer, ok := a.player.(interface{ Close() }); ok {
		closer.Close()
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
