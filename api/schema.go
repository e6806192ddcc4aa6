package api

import (
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/reviewgraph/reviewgraph/api/model"
)

// newSchema builds the executable schema around the resolver root. Relation
// fields resolve to thunks, the executor calls them only after every sibling
// resolver had a chance to register its keys with the per-request loaders.
func newSchema(r *resolverRoot) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					u, err := sourceAs[*model.User](p)
					if err != nil {
						return nil, err
					}
					return u.ID.Base64(), nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
		},
	})

	categoryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, err := sourceAs[*model.Category](p)
					if err != nil {
						return nil, err
					}
					return c.ID.Base64(), nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"description": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
		},
	})

	reviewType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Review",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					rev, err := sourceAs[*model.Review](p)
					if err != nil {
						return nil, err
					}
					return rev.ID.Base64(), nil
				},
			},
			"rating": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
			},
			"comment": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"author": &graphql.Field{
				Type: userType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					rev, err := sourceAs[*model.Review](p)
					if err != nil {
						return nil, err
					}
					return r.Review().Author(p.Context, rev)
				},
			},
		},
	})

	businessType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Business",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					b, err := sourceAs[*model.Business](p)
					if err != nil {
						return nil, err
					}
					return b.ID.Base64(), nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"description": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"reviews": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(reviewType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					b, err := sourceAs[*model.Business](p)
					if err != nil {
						return nil, err
					}
					return r.Business().Reviews(p.Context, b)
				},
			},
			"categories": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(categoryType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					b, err := sourceAs[*model.Business](p)
					if err != nil {
						return nil, err
					}
					return r.Business().Categories(p.Context, b)
				},
			},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"businesses": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(businessType))),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Query().Businesses(p.Context, optionalStringArg(p, "query"))
				},
			},
			"business": &graphql.Field{
				Type: businessType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.ID),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := idArg(p, "id")
					if err != nil {
						return nil, err
					}
					return r.Query().Business(p.Context, id)
				},
			},
			"users": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType))),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Query().Users(p.Context, optionalStringArg(p, "query"))
				},
			},
		},
	})

	createBusinessInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateBusinessInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.String),
			},
			"description": &graphql.InputObjectFieldConfig{
				Type: graphql.String,
			},
		},
	})

	createUserInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.String),
			},
			"email": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.String),
			},
		},
	})

	createReviewInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateReviewInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"businessId": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.ID),
			},
			"userId": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.ID),
			},
			"rating": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.Int),
			},
			"comment": &graphql.InputObjectFieldConfig{
				Type: graphql.String,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createBusiness": &graphql.Field{
				Type: graphql.NewNonNull(businessType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(createBusinessInputType),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, err := inputArg(p)
					if err != nil {
						return nil, err
					}
					return r.Mutation().CreateBusiness(p.Context, model.CreateBusinessInput{
						Name:        stringField(input, "name"),
						Description: stringField(input, "description"),
					})
				},
			},
			"createUser": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(createUserInputType),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, err := inputArg(p)
					if err != nil {
						return nil, err
					}
					return r.Mutation().CreateUser(p.Context, model.CreateUserInput{
						Name:  stringField(input, "name"),
						Email: stringField(input, "email"),
					})
				},
			},
			"createReview": &graphql.Field{
				Type: graphql.NewNonNull(reviewType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(createReviewInputType),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, err := inputArg(p)
					if err != nil {
						return nil, err
					}

					businessId, err := model.ParseID(stringField(input, "businessId"))
					if err != nil {
						return nil, err
					}

					userId, err := model.ParseID(stringField(input, "userId"))
					if err != nil {
						return nil, err
					}

					return r.Mutation().CreateReview(p.Context, model.CreateReviewInput{
						BusinessID: businessId,
						UserID:     userId,
						Rating:     intField(input, "rating"),
						Comment:    stringField(input, "comment"),
					})
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func sourceAs[T any](p graphql.ResolveParams) (T, error) {
	source, ok := p.Source.(T)
	if !ok {
		var zero T
		return zero, errors.New("unexpected source type")
	}
	return source, nil
}

func optionalStringArg(p graphql.ResolveParams, name string) *string {
	value, ok := p.Args[name].(string)
	if !ok {
		return nil
	}
	return &value
}

func idArg(p graphql.ResolveParams, name string) (model.ID, error) {
	value, ok := p.Args[name].(string)
	if !ok {
		return model.ID{}, errors.New("missing id argument")
	}
	return model.ParseID(value)
}

func inputArg(p graphql.ResolveParams) (map[string]interface{}, error) {
	input, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, errors.New("missing input argument")
	}
	return input, nil
}

func stringField(input map[string]interface{}, name string) string {
	value, _ := input[name].(string)
	return value
}

func intField(input map[string]interface{}, name string) int {
	value, _ := input[name].(int)
	return value
}
