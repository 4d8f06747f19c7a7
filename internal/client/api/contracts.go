package api

import (
	"context"
	"fmt"

	"github.com/wholesalelens/lenscli/internal/client/models"
	"github.com/wholesalelens/lenscli/internal/netx"
)

// ContractUpload carries a contract file and its metadata. The file bytes
// never transit the backend call itself; the backend hands out a presigned
// URL and the client PUTs the bytes there directly.
type ContractUpload struct {
	DealID       int64
	DocumentType models.ContractType
	FileName     string
	ClosingDate  *int64
	EMD          *int64
	Data         []byte
	ContentType  string
}

// ListContractsByDeal returns the contracts attached to a deal, cached per
// identity. A fetch failure degrades to an empty list.
func (c *Client) ListContractsByDeal(ctx context.Context, dealID int64) []*models.ContractDocument {
	a, err := c.actors.Get(ctx)
	if err != nil {
		c.log.Warn(ctx, "contract list unavailable", "dealId", dealID, "error", err)
		return []*models.ContractDocument{}
	}
	if v, ok := c.store.Get(a.Principal(), contractsKey(dealID)); ok {
		return v.([]*models.ContractDocument)
	}

	reply, err := c.invoke(ctx, a, "listContractsByDeal", map[string]any{"dealId": dealID})
	if err != nil {
		c.log.Warn(ctx, "contract list fetch failed", "dealId", dealID, "error", err)
		return []*models.ContractDocument{}
	}
	contracts := make([]*models.ContractDocument, 0)
	for _, m := range items(reply, "contracts") {
		contracts = append(contracts, models.ContractFromMap(m))
	}
	c.store.Set(a.Principal(), contractsKey(dealID), contracts)
	return contracts
}

// GetContract returns one contract, or (nil, nil) if it does not exist.
func (c *Client) GetContract(ctx context.Context, contractID int64) (*models.ContractDocument, error) {
	reply, _, err := c.call(ctx, "getContract", map[string]any{"contractId": contractID})
	if err != nil {
		return nil, err
	}
	if m, ok := reply["contract"].(map[string]any); ok {
		return models.ContractFromMap(m), nil
	}
	return nil, nil
}

// UploadContract registers the contract record, uploads the file bytes to
// the presigned URL the backend returns, then marks the record uploaded.
// Returns the new contract id.
func (c *Client) UploadContract(ctx context.Context, up ContractUpload) (int64, error) {
	args := map[string]any{
		"dealId":       up.DealID,
		"documentType": string(up.DocumentType),
		"fileName":     up.FileName,
		"closingDate":  optVal(up.ClosingDate),
		"emd":          optVal(up.EMD),
	}
	reply, ns, err := c.call(ctx, "uploadContract", args)
	if err != nil {
		return 0, err
	}
	id := replyID(reply)

	uploadURL, _ := reply["uploadUrl"].(string)
	if uploadURL == "" {
		return 0, fmt.Errorf("upload contract: backend returned no upload url")
	}
	if err := netx.UploadToPresignedURL(ctx, uploadURL, up.Data, up.ContentType); err != nil {
		return 0, fmt.Errorf("upload contract file: %w", err)
	}
	if _, _, err := c.call(ctx, "markContractUploaded", map[string]any{"contractId": id}); err != nil {
		return 0, err
	}

	c.store.InvalidateKey(ns, contractsKey(up.DealID))
	return id, nil
}

// UpdateContractStatus records a signing-status change. The contract id
// alone does not identify which deal's list is stale, so the whole contract
// key family is dropped.
func (c *Client) UpdateContractStatus(ctx context.Context, contractID int64, signing models.SigningStatus, closingDate, emd *int64) error {
	args := map[string]any{
		"contractId":    contractID,
		"signingStatus": string(signing),
		"closingDate":   optVal(closingDate),
		"emd":           optVal(emd),
	}
	_, ns, err := c.call(ctx, "updateContractStatus", args)
	if err != nil {
		return err
	}
	c.store.InvalidatePrefix(ns, contractPrefix)
	return nil
}
