package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	gqlhandler "github.com/graphql-go/handler"
	"github.com/reviewgraph/reviewgraph/api/dataloader"
	"github.com/reviewgraph/reviewgraph/business"
	"github.com/reviewgraph/reviewgraph/category"
	"github.com/reviewgraph/reviewgraph/config"
	"github.com/reviewgraph/reviewgraph/review"
	"github.com/reviewgraph/reviewgraph/user"
)

func NewRouter(
	conf *config.Config,
	businessService business.Service,
	reviewService review.Service,
	userService user.Service,
	categoryService category.Service,
) (http.Handler, error) {
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   conf.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	schema, err := newSchema(newResolverRoot(businessService, reviewService, userService, categoryService))
	if err != nil {
		return nil, err
	}

	gqlHandler := gqlhandler.New(&gqlhandler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: conf.HttpServer.GraphiQLEnabled,
	})

	router := chi.NewRouter()
	router.Use(corsMiddleware.Handler)

	router.Group(func(r chi.Router) {
		r.HandleFunc("/health", func(writer http.ResponseWriter, request *http.Request) {})
	})

	router.Group(func(r chi.Router) {
		r.Use(dataloader.NewMiddleware(
			conf.DataLoaderMaxBatch,
			reviewService,
			userService,
			categoryService,
		))

		r.Handle("/query", gqlHandler)
	})

	return router, nil
}
