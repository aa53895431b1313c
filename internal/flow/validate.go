package flow

import "github.com/google/uuid"

// ValidateRefs enforces the structural contract between a flow's type
// and its asset references. It is pure and runs before any lookup or
// write:
//
//	income:   to required, from optional (e.g. dividends referencing the paying stock)
//	expense:  from required, to forbidden
//	transfer: both required and distinct
//	other:    unconstrained (manual corrections)
func ValidateRefs(t Type, fromAssetID, toAssetID *uuid.UUID) error {
	switch t {
	case TypeIncome:
		if toAssetID == nil {
			return &ValidationError{Field: "to_asset_id", Reason: "required for income flows"}
		}
	case TypeExpense:
		if fromAssetID == nil {
			return &ValidationError{Field: "from_asset_id", Reason: "required for expense flows"}
		}

		if toAssetID != nil {
			return &ValidationError{Field: "to_asset_id", Reason: "must be absent for expense flows"}
		}
	case TypeTransfer:
		if fromAssetID == nil || toAssetID == nil {
			return &ValidationError{Field: "from_asset_id/to_asset_id", Reason: "both required for transfers"}
		}

		if *fromAssetID == *toAssetID {
			return &ValidationError{Field: "to_asset_id", Reason: "transfer source and destination must differ"}
		}
	case TypeOther:
		// No asset-reference constraints.
	default:
		return &ValidationError{Field: "type", Reason: "unknown flow type"}
	}

	return nil
}
