package server

import (
	"fandom/internal/models"

	"github.com/gofiber/fiber/v2"
)

type bannedWordsRequest struct {
	Words []string `json:"words"`
}

func wordsResponse(c *fiber.Ctx, communityID uint, words []string) error {
	return c.JSON(fiber.Map{
		"community_id": communityID,
		"words":        words,
	})
}

// GetBannedWords handles GET /api/communities/:id/banned-words
func (s *Server) GetBannedWords(c *fiber.Ctx) error {
	communityID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	words, err := s.communityService.GetBannedWords(c.Context(), communityID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return wordsResponse(c, communityID, words)
}

// AddBannedWords handles POST /api/communities/:id/banned-words
// New words are appended after the existing ones; duplicates are ignored.
func (s *Server) AddBannedWords(c *fiber.Ctx) error {
	communityID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req bannedWordsRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBusinessRuleError("Invalid request body"))
	}

	words, err := s.communityService.AddBannedWords(c.Context(), communityID, req.Words)
	if err != nil {
		return respondServiceError(c, err)
	}
	return wordsResponse(c, communityID, words)
}

// ReplaceBannedWords handles PUT /api/communities/:id/banned-words
// The submitted list overwrites the registry, keeping submission order.
func (s *Server) ReplaceBannedWords(c *fiber.Ctx) error {
	communityID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req bannedWordsRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBusinessRuleError("Invalid request body"))
	}

	words, err := s.communityService.ReplaceBannedWords(c.Context(), communityID, req.Words)
	if err != nil {
		return respondServiceError(c, err)
	}
	return wordsResponse(c, communityID, words)
}

// RemoveBannedWords handles DELETE /api/communities/:id/banned-words
func (s *Server) RemoveBannedWords(c *fiber.Ctx) error {
	communityID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req bannedWordsRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBusinessRuleError("Invalid request body"))
	}

	words, err := s.communityService.RemoveBannedWords(c.Context(), communityID, req.Words)
	if err != nil {
		return respondServiceError(c, err)
	}
	return wordsResponse(c, communityID, words)
}
