package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type MembershipHandler struct {
	MembershipRepo entity.MembershipRepositoryInterface
}

func NewMembershipHandler(repo entity.MembershipRepositoryInterface) *MembershipHandler {
	return &MembershipHandler{MembershipRepo: repo}
}

// HandleList is admin-only; the router wraps it in RequireAdmin.
func (h *MembershipHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	members, err := h.MembershipRepo.List(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not list members")
		return
	}
	if members == nil {
		members = []*entity.Membership{}
	}

	writeJSON(w, http.StatusOK, members)
}

// HandleUpdateRole lets an admin promote or demote a member.
func (h *MembershipHandler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
		Role   string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	if input.Role != entity.RoleAdmin && input.Role != entity.RoleMember {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_ROLE", "role must be ADMIN or MEMBER")
		return
	}
	if input.UserID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_FIELDS", "user_id is required")
		return
	}

	m := &entity.Membership{UserID: input.UserID, Email: input.Email, Role: input.Role}
	if err := h.MembershipRepo.Upsert(r.Context(), m); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not update role")
		return
	}

	writeJSON(w, http.StatusOK, m)
}
