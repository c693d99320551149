
// Package app wires configuration into a ready pipeline.
package app

import (
	"fmt"

	"brightedge-url-classifier/internal/classifier"
	"brightedge-url-classifier/internal/config"
	"brightedge-url-classifier/internal/crawler"
	"brightedge-url-classifier/internal/ioformats"
	"brightedge-url-classifier/internal/language"
	"brightedge-url-classifier/internal/models"
	"brightedge-url-classifier/internal/pipeline"
	"brightedge-url-classifier/internal/summary"
	"brightedge-url-classifier/pkg/logger"
)

type App struct {
	Pipeline   *pipeline.Pipeline
	Summarizer *summary.Summarizer
	Classifier *classifier.Classifier
}

// Build loads every startup resource. Any missing or unreadable resource is
// an error, so nothing is processed with a partial configuration.
func Build(cfg *config.Config, l *logger.Logger) (*App, error) {
	retailers, err := ioformats.ReadRetailers(cfg.Retailers)
	if err != nil {
		return nil, fmt.Errorf("load retailers: %w", err)
	}
	l.Infof("loaded %d retailer domains from %s", len(retailers), cfg.Retailers)

	rules := classifier.DefaultRules()
	if cfg.Rules != "" {
		if rules, err = classifier.LoadRules(cfg.Rules); err != nil {
			return nil, err
		}
		l.Infof("loaded %d keyword rules from %s", len(rules), cfg.Rules)
	}

	lem, err := language.NewEnglish()
	if err != nil {
		return nil, err
	}

	return Assemble(cfg, rules, retailers, lem, l), nil
}

// Assemble builds the components from already loaded resources.
func Assemble(cfg *config.Config, rules []models.Rule, retailers []string, lem language.Lemmatizer, l *logger.Logger) *App {
	client := crawler.NewHTTPClient(cfg.Timeout, cfg.DialTimeout, cfg.MaxBody,
		crawler.WithRateLimit(cfg.Rate),
		crawler.WithRobots(cfg.Robots),
		crawler.WithUserAgent(cfg.UserAgent),
	)
	cl := classifier.New(rules, classifier.NewRetailerList(retailers))
	sum := summary.New(summary.DefaultConfig(lem, language.EnglishStopWords()), client)
	return &App{
		Pipeline:   pipeline.New(cl, sum, cfg.Keywords, l),
		Summarizer: sum,
		Classifier: cl,
	}
}
