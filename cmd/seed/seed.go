package main

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/nkiryanov/masakin/internal/logger"
	"github.com/nkiryanov/masakin/internal/models"
	"github.com/nkiryanov/masakin/internal/repository/postgres"
	"github.com/nkiryanov/masakin/internal/service/recipe"
	"github.com/nkiryanov/masakin/internal/service/user"
)

type summary struct {
	Users   int
	Recipes int
	Follows int
	Saves   int
}

type seeder struct {
	users   *user.UserService
	recipes *recipe.RecipeService
	rnd     *rand.Rand
	logger  logger.Logger
}

// Fill database with chefs, their recipes and random follows and saves between them
// Chefs are created through user service, so passwords are hashed as on registration
func seed(ctx context.Context, db postgres.DBTX, reset bool, hasher user.PasswordHasher, rnd *rand.Rand, l logger.Logger) (summary, error) {
	var sum summary

	if reset {
		if err := postgres.Truncate(ctx, db); err != nil {
			return sum, fmt.Errorf("can't clear existing data. Err: %w", err)
		}
		l.Info("Existing data cleared")
	}

	storage := postgres.NewStorage(db)
	s := seeder{
		users:   user.NewService(hasher, storage),
		recipes: recipe.NewService(storage),
		rnd:     rnd,
		logger:  l,
	}

	created, err := s.createChefs(ctx)
	if err != nil {
		return sum, err
	}
	sum.Users = len(created)

	recipes, err := s.createRecipes(ctx, created)
	if err != nil {
		return sum, err
	}
	sum.Recipes = len(recipes)

	sum.Follows, err = s.followRandomly(ctx, created)
	if err != nil {
		return sum, err
	}

	sum.Saves, err = s.saveRandomly(ctx, created, recipes)
	if err != nil {
		return sum, err
	}

	return sum, nil
}

func (s *seeder) createChefs(ctx context.Context) ([]models.User, error) {
	created := make([]models.User, 0, len(chefs))

	for _, c := range chefs {
		u, err := s.users.CreateUser(ctx, user.CreateUserParams{
			Name:     c.Name,
			Email:    c.Email,
			Password: chefPassword,
			Bio:      c.Bio,
		})
		if err != nil {
			return nil, fmt.Errorf("can't create chef %s. Err: %w", c.Email, err)
		}
		created = append(created, u)
	}

	s.logger.Info("Chefs created", "count", len(created))
	return created, nil
}

func (s *seeder) createRecipes(ctx context.Context, authors []models.User) ([]models.Recipe, error) {
	byEmail := make(map[string]models.User, len(authors))
	for _, a := range authors {
		byEmail[a.Email] = a
	}

	created := make([]models.Recipe, 0, len(chefRecipes))
	for _, cr := range chefRecipes {
		author, ok := byEmail[cr.AuthorEmail]
		if !ok {
			return nil, fmt.Errorf("author %s of %q is not seeded", cr.AuthorEmail, cr.Params.Title)
		}

		r, err := s.recipes.Create(ctx, author.ID, cr.Params)
		if err != nil {
			return nil, fmt.Errorf("can't create recipe %q. Err: %w", cr.Params.Title, err)
		}
		created = append(created, r)
	}

	s.logger.Info("Recipes created", "count", len(created))
	return created, nil
}

// Every chef follows from one to four other chefs
func (s *seeder) followRandomly(ctx context.Context, users []models.User) (int, error) {
	var total int

	for _, u := range users {
		others := make([]models.User, 0, len(users)-1)
		for _, o := range users {
			if o.ID != u.ID {
				others = append(others, o)
			}
		}

		n := min(s.rnd.IntN(4)+1, len(others))
		for _, i := range s.rnd.Perm(len(others))[:n] {
			if err := s.users.Follow(ctx, u.ID, others[i].ID); err != nil {
				return total, fmt.Errorf("%s can't follow %s. Err: %w", u.Email, others[i].Email, err)
			}
			total++
		}
	}

	s.logger.Info("Random follows generated", "count", total)
	return total, nil
}

// Every chef saves from one to five recipes
func (s *seeder) saveRandomly(ctx context.Context, users []models.User, recipes []models.Recipe) (int, error) {
	var total int

	for _, u := range users {
		n := min(s.rnd.IntN(5)+1, len(recipes))
		for _, i := range s.rnd.Perm(len(recipes))[:n] {
			if err := s.recipes.Save(ctx, u.ID, recipes[i].ID); err != nil {
				return total, fmt.Errorf("%s can't save %q. Err: %w", u.Email, recipes[i].Title, err)
			}
			total++
		}
	}

	s.logger.Info("Random saves generated", "count", total)
	return total, nil
}
