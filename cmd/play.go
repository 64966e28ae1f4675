package cmd

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avelk/marketmath/internal/app"
	"github.com/avelk/marketmath/internal/market"
	"github.com/avelk/marketmath/internal/quiz"
	"github.com/avelk/marketmath/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the quiz",
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	sess, notice, err := buildSession(v)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Session:    sess,
		LoadNotice: notice,
	})
}

// buildSession wires the synthesizer, template set, generator, and session
// from configuration. A template load failure is not fatal: it is returned
// as a user-facing notice and the session runs with an empty template set,
// where question generation is a warning no-op.
func buildSession(v *viper.Viper) (*session.Session, string, error) {
	cfg, err := marketConfig(v)
	if err != nil {
		return nil, "", err
	}

	templates, notice := loadTemplates(v.GetString("templates"))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	synth := market.NewSynthesizer(cfg, rng)
	gen := quiz.NewGenerator(templates, rng)

	sess := session.New(synth, gen, v.GetFloat64("tolerance"), time.Now())

	// First dataset and question, as on page load. With no templates the
	// dataset still renders; the notice explains the missing question.
	if err := sess.Randomize(); err != nil {
		slog.Warn("cannot generate question", "error", err)
	}

	return sess, notice, nil
}

// loadTemplates resolves the template source: an external file when a path
// is configured, the embedded default set otherwise. Failures are reported
// once and leave the set empty.
func loadTemplates(path string) ([]quiz.Template, string) {
	var (
		templates []quiz.Template
		err       error
	)
	if path != "" {
		templates, err = quiz.LoadTemplates(path)
	} else {
		templates, err = quiz.DefaultTemplates()
	}
	if err != nil {
		slog.Error("could not load question templates", "error", err)
		return nil, "Could not load question templates. Quiz is disabled."
	}
	return templates, ""
}
