// Package main populates a running backend simulator with sample
// occurrences so the dashboard and the listing have data to show.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/sosdefesa/admin/internal/client"
	"github.com/sosdefesa/admin/internal/config"
	"github.com/sosdefesa/admin/internal/model"
	"github.com/sosdefesa/admin/internal/session"
	"go.uber.org/zap"
)

var neighborhoods = []string{
	"Centro", "Jatiúca", "Ponta Verde", "Benedito Bentes",
	"Tabuleiro do Martins", "Farol", "Jacintinho", "Vergel do Lago",
}

func main() {
	username := flag.String("username", "admin", "login to seed with")
	password := flag.String("password", "admin", "password for the login")
	count := flag.Int("count", 40, "number of occurrences to create")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	ctx := context.Background()

	sess := session.New()
	c := client.New(cfg.APIBaseURL, sess, logger)

	token, err := c.Login(ctx, *username, *password)
	if err != nil {
		logger.Fatal("login failed", zap.Error(err))
	}
	sess.SetToken(token)

	me, err := c.Me(ctx)
	if err != nil {
		logger.Fatal("identity check failed", zap.Error(err))
	}

	loc := cfg.Location()
	now := time.Now().In(loc)

	created := 0
	for i := 0; i < *count; i++ {
		typ := model.TypeKeys[i%len(model.TypeKeys)]
		// Spread the records over the last six months so the monthly chart
		// has more than one bucket.
		registered := now.AddDate(0, -(i % 6), -(i % 11))

		oc, err := c.CreateOccurrence(ctx, model.NewOccurrence{
			Type:          typ,
			Neighborhood:  neighborhoods[i%len(neighborhoods)],
			Description:   fmt.Sprintf("Registro de %s no bairro %s", model.TypeName(typ), neighborhoods[i%len(neighborhoods)]),
			CreatedAt:     registered,
			LastUpdatedAt: registered,
			UserID:        me.ID,
			Latitude:      -9.66 + float64(i)*0.003,
			Longitude:     -35.73 - float64(i)*0.002,
		})
		if err != nil {
			logger.Fatal("create failed", zap.Error(err), zap.Int("index", i))
		}
		created++

		// Walk a third of the records into analysis and finalize a few so
		// every lifecycle state shows up in the listing.
		switch i % 3 {
		case 1:
			err = c.CreateFeedback(ctx, model.Feedback{
				OccurrenceID: oc.ID,
				UserID:       me.ID,
				Title:        model.StatusNames[model.StatusAnalyzing],
				Description:  model.StatusNames[model.StatusAnalyzing],
				Status:       model.StatusAnalyzing,
				CreatedAt:    registered,
			})
		case 2:
			err = c.FinalizeOccurrence(ctx, oc.ID)
		}
		if err != nil {
			logger.Fatal("transition failed", zap.Error(err), zap.Int64("id", oc.ID))
		}
	}

	logger.Info("seeding complete", zap.Int("created", created))
}
