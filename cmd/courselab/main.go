// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

// Command courselab recommends learning content for a user from the
// configured catalog and progress store.
//
// Usage:
//
//	courselab -user alice                     ranked recommendations per kind
//	courselab -user alice -next               the single best next item
//	courselab -user alice -time 30            recommendations bucketed by duration
//	courselab -user alice -complete article/go-intro -minutes 12
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/courselab/courselab-go/internal/catalog"
	"github.com/courselab/courselab-go/internal/config"
	"github.com/courselab/courselab-go/internal/logging"
	"github.com/courselab/courselab-go/internal/progress"
	"github.com/courselab/courselab-go/internal/recommend"
)

func main() {
	if err := run(); err != nil {
		logging.Err(err).Msg("courselab failed")
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  = flag.String("config", "", "path to YAML config file")
		userID      = flag.String("user", "", "user to recommend for (required)")
		next        = flag.Bool("next", false, "print only the single best next item")
		timeBudget  = flag.Int("time", 0, "available minutes; buckets output by duration")
		maxResults  = flag.Int("max", 0, "max results per kind (0 = configured default)")
		diversity   = flag.Float64("diversity", 0.5, "diversity factor in [0,1]")
		includeDone = flag.Bool("include-completed", false, "include completed items")
		complete    = flag.String("complete", "", "record a completion as kind/id, e.g. article/go-intro")
		minutes     = flag.Int("minutes", 0, "minutes spent, used with -complete")
		asJSON      = flag.Bool("json", false, "emit JSON instead of text")
	)
	flag.Parse()

	if *userID == "" {
		flag.Usage()
		return errors.New("missing -user")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logging.Err(cerr).Msg("closing progress store")
		}
	}()

	prog, err := store.Get(*userID)
	if errors.Is(err, progress.ErrNotFound) {
		prog = progress.New(*userID)
	} else if err != nil {
		return err
	}

	engine, err := recommend.NewEngine(cfg.EngineConfig(), logging.Logger())
	if err != nil {
		return err
	}

	if *complete != "" {
		return recordCompletion(engine, store, cat, prog, *complete, *minutes)
	}

	opts := recommend.Options{
		IncludeCompleted: *includeDone,
		MaxResults:       *maxResults,
		DiversityFactor:  *diversity,
	}

	switch {
	case *next:
		return printNext(engine, prog, cat, *asJSON)
	case *timeBudget > 0:
		return printBuckets(engine, prog, cat, *timeBudget, *asJSON)
	default:
		return printSet(engine, prog, cat, opts, *asJSON)
	}
}

func openStore(cfg *config.Config) (*progress.Store, error) {
	if cfg.Store.InMemory {
		return progress.OpenInMemory()
	}
	return progress.Open(cfg.Store.Path)
}

// recordCompletion marks an item done, credits time, and persists both the
// progress record and the incrementally updated profile.
func recordCompletion(engine *recommend.Engine, store *progress.Store, cat *catalog.Catalog, prog *progress.UserProgress, ref string, minutes int) error {
	kindName, id, ok := strings.Cut(ref, "/")
	if !ok {
		return fmt.Errorf("invalid -complete %q, want kind/id", ref)
	}

	var (
		kind catalog.Kind
		tags []string
	)
	switch kindName {
	case "article":
		a, found := cat.FindArticle(id)
		if !found {
			return fmt.Errorf("unknown article %q", id)
		}
		kind, tags = catalog.KindArticle, a.Tags
		if prog.CompletedArticles == nil {
			prog.CompletedArticles = make(map[string]bool)
		}
		prog.CompletedArticles[id] = true
		prog.ArticleMinutes += minutes
	case "tutorial":
		t, found := cat.FindTutorial(id)
		if !found {
			return fmt.Errorf("unknown tutorial %q", id)
		}
		kind, tags = catalog.KindTutorial, t.Tags
		if prog.CompletedTutorials == nil {
			prog.CompletedTutorials = make(map[string]bool)
		}
		prog.CompletedTutorials[id] = true
		prog.TutorialMinutes += minutes
		delete(prog.TutorialProgress, id)
	case "path":
		p, found := cat.FindPath(id)
		if !found {
			return fmt.Errorf("unknown path %q", id)
		}
		kind, tags = catalog.KindPath, p.Tags
		if prog.CompletedPaths == nil {
			prog.CompletedPaths = make(map[string]bool)
		}
		prog.CompletedPaths[id] = true
		delete(prog.PathProgress, id)
	default:
		return fmt.Errorf("unknown kind %q, want article, tutorial, or path", kindName)
	}

	prog.LastActivityAt = time.Now()
	if err := store.Put(prog); err != nil {
		return err
	}

	var profile recommend.UserProfile
	if err := store.GetProfile(prog.UserID, &profile); err != nil || !recommend.ValidateUserProfile(&profile) {
		profile = engine.BuildProfile(prog, cat.Articles, cat.Tutorials)
	} else {
		profile = engine.UpdateProfileWithActivity(profile, kind, tags, minutes)
	}
	if err := store.PutProfile(prog.UserID, profile); err != nil {
		return err
	}

	logging.Info().
		Str("user", prog.UserID).
		Str("item", ref).
		Int("minutes", minutes).
		Msg("completion recorded")
	return nil
}

func printNext(engine *recommend.Engine, prog *progress.UserProgress, cat *catalog.Catalog, asJSON bool) error {
	rec := engine.NextRecommendation(prog, cat)
	if rec == nil {
		fmt.Println("Nothing left to recommend.")
		return nil
	}
	if asJSON {
		return emitJSON(rec)
	}
	printRecommendation(engine, *rec)
	return nil
}

func printBuckets(engine *recommend.Engine, prog *progress.UserProgress, cat *catalog.Catalog, minutes int, asJSON bool) error {
	buckets := engine.RecommendationsByTime(prog, cat, minutes)
	if asJSON {
		return emitJSON(buckets)
	}

	sections := []struct {
		label string
		recs  []recommend.Recommendation
	}{
		{"Quick (≤15 min)", buckets.Quick},
		{"Moderate (16-45 min)", buckets.Moderate},
		{"Long (>45 min)", buckets.Long},
	}
	for _, sec := range sections {
		if len(sec.recs) == 0 {
			continue
		}
		fmt.Printf("%s\n", sec.label)
		for _, rec := range sec.recs {
			printRecommendation(engine, rec)
		}
		fmt.Println()
	}
	return nil
}

func printSet(engine *recommend.Engine, prog *progress.UserProgress, cat *catalog.Catalog, opts recommend.Options, asJSON bool) error {
	set := engine.AllRecommendations(prog, cat, opts)
	if asJSON {
		return emitJSON(set)
	}
	if set.Empty() {
		fmt.Println("Nothing left to recommend.")
		return nil
	}

	sections := []struct {
		label string
		recs  []recommend.Recommendation
	}{
		{"Articles", set.Articles},
		{"Tutorials", set.Tutorials},
		{"Learning Paths", set.Paths},
	}
	for _, sec := range sections {
		if len(sec.recs) == 0 {
			continue
		}
		fmt.Printf("%s\n", sec.label)
		for _, rec := range sec.recs {
			printRecommendation(engine, rec)
		}
		fmt.Println()
	}
	return nil
}

func printRecommendation(engine *recommend.Engine, rec recommend.Recommendation) {
	exp := engine.Explain(rec)
	meta := rec.Item.Metadata()
	fmt.Printf("  %-30s %3d min  [%s] %s\n", meta.Title, meta.EstimatedMinutes, exp.Confidence, exp.Details)
}

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
