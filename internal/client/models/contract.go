package models

type ContractType string

const (
	ContractPurchase   ContractType = "PurchaseContract"
	ContractAssignment ContractType = "AssignmentContract"
)

type SigningStatus string

const (
	SigningUnsigned SigningStatus = "Unsigned"
	SigningSigned   SigningStatus = "Signed"
)

// ContractDocument is a contract file attached to a deal. The file bytes
// live in backend-managed storage; the client only sees URLs.
type ContractDocument struct {
	ID            int64
	DealID        int64
	Owner         string
	DocumentType  ContractType
	FileName      string
	SigningStatus SigningStatus
	ClosingDate   *int64
	EMD           *int64
	DownloadURL   string
	UploadedAt    int64
}

func ContractFromMap(m map[string]any) *ContractDocument {
	return &ContractDocument{
		ID:            num(m, "id"),
		DealID:        num(m, "dealId"),
		Owner:         str(m, "owner"),
		DocumentType:  ContractType(str(m, "documentType")),
		FileName:      str(m, "fileName"),
		SigningStatus: SigningStatus(str(m, "signingStatus")),
		ClosingDate:   optNum(m, "closingDate"),
		EMD:           optNum(m, "emd"),
		DownloadURL:   str(m, "downloadUrl"),
		UploadedAt:    num(m, "uploadedAt"),
	}
}
