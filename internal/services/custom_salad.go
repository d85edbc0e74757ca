package service

import (
	"context"

	appErrors "github.com/ensaladazo/ensaladazo-backend/internal/errors"
	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	repository "github.com/ensaladazo/ensaladazo-backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxSaladNameLength          = 100
	maxIngredientNameLength     = 100
	maxIngredientCategoryLength = 50
	maxSaladNotesLength         = 500
)

type CustomSaladService interface {
	CreateCustomSalad(ctx context.Context, req *models.CreateCustomSaladRequest) (*models.CustomSalad, error)
	ListCustomSalads(ctx context.Context, sessionID string) ([]*models.CustomSalad, error)
	GetCustomSalad(ctx context.Context, id uuid.UUID) (*models.CustomSalad, error)
	Ingredients() *models.IngredientCatalog
}

type customSaladService struct {
	repo  repository.CustomSaladRepository
	users UserService
	text  plainText
}

func NewCustomSaladService(repo repository.CustomSaladRepository, users UserService) CustomSaladService {
	return &customSaladService{
		repo:  repo,
		users: users,
		text:  newPlainText(),
	}
}

func (s *customSaladService) CreateCustomSalad(ctx context.Context, req *models.CreateCustomSaladRequest) (*models.CustomSalad, error) {
	ingredients := make([]models.Ingredient, 0, len(req.Ingredients))
	for _, ingredient := range req.Ingredients {
		name, err := s.text.Clean("ingredients.name", ingredient.Name, maxIngredientNameLength)
		if err != nil {
			return nil, err
		}

		category, err := s.text.Clean("ingredients.category", ingredient.Category, maxIngredientCategoryLength)
		if err != nil {
			return nil, err
		}

		ingredients = append(ingredients, models.Ingredient{
			Name:     name,
			Category: category,
			Price:    ingredient.Price,
		})
	}

	name, err := s.text.Clean("name", req.Name, maxSaladNameLength)
	if err != nil {
		return nil, err
	}

	var notes *string

	if req.Notes != nil {
		clean, err := s.text.Clean("notes", *req.Notes, maxSaladNotesLength)
		if err != nil {
			return nil, err
		}

		notes = &clean
	}

	user, err := s.users.ResolveSession(ctx, req.UserSession)
	if err != nil {
		return nil, err
	}

	salad := &models.CustomSalad{
		UserID:      user.ID,
		Name:        name,
		Ingredients: ingredients,
		TotalPrice:  decimal.NewFromFloat(*req.TotalPrice).Round(2).InexactFloat64(),
		Notes:       notes,
	}

	if err := s.repo.CreateCustomSalad(ctx, salad); err != nil {
		return nil, writeError(err, "Failed to save custom salad")
	}

	return salad, nil
}

// ListCustomSalads lists one session's salads, or every salad when sessionID
// is empty.
func (s *customSaladService) ListCustomSalads(ctx context.Context, sessionID string) ([]*models.CustomSalad, error) {
	if sessionID == "" {
		salads, err := s.repo.ListCustomSalads(ctx)
		if err != nil {
			return nil, appErrors.DatabaseError("Failed to fetch custom salads").WithError(err)
		}

		return salads, nil
	}

	user, err := s.users.ResolveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	salads, err := s.repo.ListCustomSaladsByUser(ctx, user.ID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch custom salads").WithError(err)
	}

	return salads, nil
}

func (s *customSaladService) GetCustomSalad(ctx context.Context, id uuid.UUID) (*models.CustomSalad, error) {
	salad, err := s.repo.GetCustomSaladByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Custom salad not found", "Failed to fetch custom salad")
	}

	return salad, nil
}

func (s *customSaladService) Ingredients() *models.IngredientCatalog {
	return IngredientMenu()
}
