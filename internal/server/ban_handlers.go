package server

import (
	"fandom/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetBans handles GET /api/communities/:id/bans
func (s *Server) GetBans(c *fiber.Ctx) error {
	communityID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	bans, err := s.banService.ListBanned(c.Context(), communityID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(bans)
}

// BanUser handles POST /api/communities/:id/bans
// Banning evicts any existing membership in the same transaction.
func (s *Server) BanUser(c *fiber.Ctx) error {
	communityID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		UserID uint `json:"user_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBusinessRuleError("Invalid request body"))
	}

	ban, err := s.banService.Ban(c.Context(), communityID, req.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ban)
}

// UnbanUser handles DELETE /api/communities/:id/bans/:userId
func (s *Server) UnbanUser(c *fiber.Ctx) error {
	communityID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.banService.Unban(c.Context(), communityID, userID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
