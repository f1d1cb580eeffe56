package handlers

import (
	"net/http"

	"github.com/stressbuster/stressbuster-api/databases"
)

// Helpline exists for handling helpline requests
type Helpline struct {
	Base
	DB databases.HelplineDatabase
}

// HelplinesHandler lists the active helplines in display order
func (h Helpline) HelplinesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.queryContext(r)
	defer cancel()

	helplines, err := h.DB.ListActive(ctx)
	if err != nil {
		h.Render.Error(w, r, err)
		return
	}
	h.Render.Success(w, http.StatusOK, "Helpline numbers retrieved successfully", helplines)
}
