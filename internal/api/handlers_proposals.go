package api

import (
	"net/http"

	"github.com/proposalboard/proposalboard/internal/db"
)

type ProposalHandler struct {
	store *db.Store
}

func NewProposalHandler(store *db.Store) *ProposalHandler {
	return &ProposalHandler{store: store}
}

// List returns every proposal row as an [id, title] tuple under "data".
// @Summary      List proposals
// @Tags         proposals
// @Produce      json
// @Success      200  {object} object{data=[][]interface{}}
// @Failure      500  {object} object{error=string}
// @Router       /proposals [get]
func (h *ProposalHandler) List(w http.ResponseWriter, r *http.Request) {
	proposals, err := h.store.ListProposals(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if proposals == nil {
		// An empty table still serializes as "data": []
		proposals = []db.Proposal{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": proposals})
}
