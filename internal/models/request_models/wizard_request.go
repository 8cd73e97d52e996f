package request_models

import "encoding/json"

// SetWizardFieldsRequest carries raw values so each one can be decoded into
// the type its draft field expects.
type SetWizardFieldsRequest struct {
	Fields map[string]json.RawMessage `json:"fields" binding:"required"`
}
