package server

import (
	"fandom/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMembers handles GET /api/communities/:id/members
func (s *Server) GetMembers(c *fiber.Ctx) error {
	communityID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	members, err := s.membershipService.ListMembers(c.Context(), communityID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(members)
}

// GetMember handles GET /api/communities/:id/members/:userId
func (s *Server) GetMember(c *fiber.Ctx) error {
	communityID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	member, err := s.membershipService.GetMember(c.Context(), communityID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(member)
}

// JoinCommunity handles POST /api/communities/:id/members
func (s *Server) JoinCommunity(c *fiber.Ctx) error {
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

	member, err := s.membershipService.Join(c.Context(), communityID, req.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

// LeaveCommunity handles DELETE /api/communities/:id/members/:userId
func (s *Server) LeaveCommunity(c *fiber.Ctx) error {
	communityID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.membershipService.Leave(c.Context(), communityID, userID); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
