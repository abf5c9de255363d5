// appearance.go
//
// A small, dependable data service for link-in-bio profile appearance settings
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of appearancedb.
// appearancedb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// appearancedb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with appearancedb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/appearancedb/internal/services"
	"github.com/localnerve/appearancedb/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppearanceHandler serves /api/appearance
type AppearanceHandler struct {
	DB        *gorm.DB
	AssetHost string
	Logger    *zap.Logger
}

// GetAppearance handles GET /api/appearance
// @Summary Get appearance
// @Description Get the caller's profile appearance with audio tracks in order
// @Tags Appearance
// @Produce json
// @Security CookieAuth
// @Success 200 {object} models.Appearance
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.CodedErrorResponseStruct
// @Router /appearance [get]
func (h *AppearanceHandler) GetAppearance(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "appearance.authorization.session")
	}

	appearance, err := services.GetAppearance(c.UserContext(), h.DB, userID)
	if err != nil {
		if errors.Is(err, services.ErrAppearanceNotFound) {
			return utils.NotFoundResponse(c, "Appearance not found")
		}
		h.Logger.Error("get appearance failed", zap.String("userID", userID), zap.Error(err))
		return utils.ServerErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, appearance, fiber.StatusOK)
}

// PutAppearance handles PUT /api/appearance
// @Summary Update appearance
// @Description Create or update the caller's appearance from a flat payload. A submitted audioTracks list replaces the stored tracks.
// @Tags Appearance
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param appearance body services.AppearanceInput true "Appearance fields"
// @Success 200 {object} models.Appearance
// @Failure 400 {object} utils.CodedErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 429 {object} utils.RateLimitResponseStruct
// @Failure 500 {object} utils.CodedErrorResponseStruct
// @Router /appearance [put]
func (h *AppearanceHandler) PutAppearance(c *fiber.Ctx) error {
	var input services.AppearanceInput
	if err := c.BodyParser(&input); err != nil {
		return utils.InvalidBodyResponse(c, err)
	}
	return h.update(c, &input)
}

// PostAppearance handles POST /api/appearance
// @Summary Update appearance (sectioned)
// @Description Create or update the caller's appearance from the sectioned payload. Same rules as PUT.
// @Tags Appearance
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param appearance body services.NestedAppearanceInput true "Appearance sections"
// @Success 200 {object} models.Appearance
// @Failure 400 {object} utils.CodedErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 429 {object} utils.RateLimitResponseStruct
// @Failure 500 {object} utils.CodedErrorResponseStruct
// @Router /appearance [post]
func (h *AppearanceHandler) PostAppearance(c *fiber.Ctx) error {
	var input services.NestedAppearanceInput
	if err := c.BodyParser(&input); err != nil {
		return utils.InvalidBodyResponse(c, err)
	}
	return h.update(c, input.Flatten())
}

// update runs validate, sanitize and reconcile for either payload shape
func (h *AppearanceHandler) update(c *fiber.Ctx, input *services.AppearanceInput) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "appearance.authorization.session")
	}

	if errs := services.ValidateAppearance(input, h.AssetHost); len(errs) > 0 {
		h.Logger.Debug("appearance validation failed", zap.String("userID", userID), zap.Int("errors", len(errs)))
		return utils.ValidationErrorResponse(c, errs)
	}

	services.SanitizeAppearance(input)

	appearance, err := services.UpdateAppearance(c.UserContext(), h.DB, userID, input)
	if err != nil {
		h.Logger.Error("update appearance failed", zap.String("userID", userID), zap.Error(err))
		return utils.ServerErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, appearance, fiber.StatusOK)
}
