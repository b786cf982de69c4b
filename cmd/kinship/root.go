package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kinship/family"
	"github.com/katalvlaran/kinship/internal/config"
	"github.com/katalvlaran/kinship/internal/graphfile"
)

// errMissingPerson is returned when a command needs a person id and neither
// a flag nor the config supplies one.
var errMissingPerson = errors.New("no person given: pass --you or set 'you' in the config")

// app carries what every subcommand needs once the root pre-run has loaded
// the config and the graph.
type app struct {
	graphPath    string
	configPath   string
	logLevel     string
	verifiedOnly bool

	cfg   config.Config
	log   *slog.Logger
	doc   *graphfile.File
	graph *family.Graph
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "kinship",
		Short:        "Infer family relationships from a family graph",
		Long:         `kinship reads a family graph (people, parent_child/sibling/spouse edges and stored relationship records) from YAML and answers how two people are related, how close they are, and where they sit on a radial family tree.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.graphPath, "graph", "g", "", "path to the family graph YAML file")
	pf.StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides the config)")
	pf.BoolVar(&a.verifiedOnly, "verified-only", false, "ignore unverified relationship records")
	_ = root.MarkPersistentFlagRequired("graph")

	root.AddCommand(
		newRelateCmd(a),
		newSurveyCmd(a),
		newFamilyCmd(a),
		newLayoutCmd(a),
		newValidateCmd(a),
	)
	return root
}

// setup loads the config, builds the logger and reads the graph.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

	start := time.Now()
	a.doc, err = graphfile.Load(a.graphPath)
	if err != nil {
		return err
	}
	var opts []family.RecordOption
	if a.verifiedOnly {
		opts = append(opts, family.WithVerifiedOnly())
	}
	g, skipped, err := a.doc.Graph(opts...)
	if err != nil {
		return fmt.Errorf("graph file '%s': %w", a.graphPath, err)
	}
	a.graph = g

	for _, r := range skipped {
		a.log.Debug("record skipped", "from", r.From, "to", r.To, "label", r.Label, "verified", r.Verified)
	}
	if dangling := family.DanglingReferences(g); len(dangling) > 0 {
		a.log.Warn("edges reference people missing from the people list", "ids", dangling)
	}
	if cmd.Name() != "validate" {
		if err := family.Validate(g); err != nil {
			a.log.Warn("graph has structural problems; run validate for details", "error", err)
		}
	}
	a.log.Debug("graph loaded", "path", a.graphPath, "people", len(g.Nodes), "edges", len(g.Edges), "elapsed", time.Since(start))

	return nil
}

// person resolves a person id from a flag value, falling back to the config.
func (a *app) person(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if a.cfg.You != "" {
		return a.cfg.You, nil
	}
	return "", errMissingPerson
}

// name returns the display name of id, or id itself.
func (a *app) name(id string) string {
	if n, ok := a.doc.Names()[id]; ok {
		return n
	}
	return id
}
