package server

import (
	"fandom/internal/models"
	"fandom/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCommunities handles GET /api/communities
func (s *Server) GetCommunities(c *fiber.Ctx) error {
	views, err := s.communityService.ListCommunities(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(views)
}

// GetUserCommunities handles GET /api/users/:userId/communities
func (s *Server) GetUserCommunities(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	views, err := s.communityService.ListCommunitiesForUser(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(views)
}

// GetCommunity handles GET /api/communities/:id
func (s *Server) GetCommunity(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	view, err := s.communityService.GetCommunity(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(view)
}

// CreateCommunity handles POST /api/communities
func (s *Server) CreateCommunity(c *fiber.Ctx) error {
	var req struct {
		ArtistID    uint     `json:"artist_id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		ImageURL    string   `json:"image_url"`
		BannedWords []string `json:"banned_words"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBusinessRuleError("Invalid request body"))
	}

	view, err := s.communityService.CreateCommunity(c.Context(), service.CreateCommunityInput{
		ArtistID:    req.ArtistID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		BannedWords: req.BannedWords,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// UpdateCommunity handles PUT /api/communities/:id
func (s *Server) UpdateCommunity(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        *string   `json:"name"`
		Description *string   `json:"description"`
		ImageURL    *string   `json:"image_url"`
		BannedWords *[]string `json:"banned_words"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBusinessRuleError("Invalid request body"))
	}

	view, err := s.communityService.UpdateCommunity(c.Context(), id, service.UpdateCommunityInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		BannedWords: req.BannedWords,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(view)
}

// DeleteCommunity handles DELETE /api/communities/:id
func (s *Server) DeleteCommunity(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.communityService.DeleteCommunity(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
