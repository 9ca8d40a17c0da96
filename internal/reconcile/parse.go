package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/domain"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/money"
)

type gstr2aFile struct {
	B2B []struct {
		CTIN string `json:"ctin"`
		Inv  []struct {
			Inum  string  `json:"inum"`
			Idt   string  `json:"idt"`
			Val   float64 `json:"val"`
			Pos   string  `json:"pos"`
			Rchrg string  `json:"rchrg"`
			Itms  []struct {
				ItmDet struct {
					Txval float64 `json:"txval"`
					Camt  float64 `json:"camt"`
					Samt  float64 `json:"samt"`
					Iamt  float64 `json:"iamt"`
					Csamt float64 `json:"csamt"`
				} `json:"itm_det"`
			} `json:"itms"`
		} `json:"inv"`
	} `json:"b2b"`
}

type itcAvail struct {
	Camt float64 `json:"camt"`
	Samt float64 `json:"samt"`
	Iamt float64 `json:"iamt"`
}

type gstr2bFile struct {
	DocData struct {
		B2B []struct {
			CTIN  string `json:"ctin"`
			TrdNm string `json:"trdnm"`
			Inv   []struct {
				Inum   string  `json:"inum"`
				Dt     string  `json:"dt"`
				Val    float64 `json:"val"`
				ItcAvl string  `json:"itcavl"`
				Items  []struct {
					Txval  float64         `json:"txval"`
					Camt   float64         `json:"camt"`
					Samt   float64         `json:"samt"`
					Iamt   float64         `json:"iamt"`
					ItcAvl json.RawMessage `json:"itcavl"`
				} `json:"items"`
			} `json:"inv"`
		} `json:"b2b"`
	} `json:"docdata"`
}

func decode(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w: empty file", domain.ErrInvalidImportFile)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidImportFile, err)
	}
	return nil
}

// ParseGSTR2A reads the portal's GSTR-2A JSON into records for period.
func ParseGSTR2A(data []byte, period FilingPeriod) ([]domain.GSTR2ARecord, error) {
	var f gstr2aFile
	if err := decode(data, &f); err != nil {
		return nil, err
	}

	var out []domain.GSTR2ARecord
	for _, sup := range f.B2B {
		for _, inv := range sup.Inv {
			var txval, camt, samt, iamt, csamt []float64
			for _, it := range inv.Itms {
				txval = append(txval, it.ItmDet.Txval)
				camt = append(camt, it.ItmDet.Camt)
				samt = append(samt, it.ItmDet.Samt)
				iamt = append(iamt, it.ItmDet.Iamt)
				csamt = append(csamt, it.ItmDet.Csamt)
			}
			out = append(out, domain.GSTR2ARecord{
				FilingPeriod:  period.String(),
				SupplierGSTIN: normGSTIN(sup.CTIN),
				InvoiceNumber: inv.Inum,
				InvoiceDate:   inv.Idt,
				InvoiceValue:  money.Round(inv.Val),
				PlaceOfSupply: inv.Pos,
				ReverseCharge: strings.EqualFold(inv.Rchrg, "Y"),
				TaxableValue:  money.Round(money.Sum(txval...)),
				CGST:          money.Round(money.Sum(camt...)),
				SGST:          money.Round(money.Sum(samt...)),
				IGST:          money.Round(money.Sum(iamt...)),
				Cess:          money.Round(money.Sum(csamt...)),
			})
		}
	}
	return out, nil
}

// ParseGSTR2B reads the portal's GSTR-2B JSON into records for period.
// Available ITC is taken from per-item itcavl amounts when present, otherwise
// the item's full tax counts unless the invoice is flagged itcavl "N".
func ParseGSTR2B(data []byte, period FilingPeriod) ([]domain.GSTR2BRecord, error) {
	var f gstr2bFile
	if err := decode(data, &f); err != nil {
		return nil, err
	}

	var out []domain.GSTR2BRecord
	for _, sup := range f.DocData.B2B {
		for _, inv := range sup.Inv {
			eligible := !strings.EqualFold(strings.TrimSpace(inv.ItcAvl), "N")
			var txval, camt, samt, iamt, itc []float64
			for _, it := range inv.Items {
				txval = append(txval, it.Txval)
				camt = append(camt, it.Camt)
				samt = append(samt, it.Samt)
				iamt = append(iamt, it.Iamt)
				if !eligible {
					continue
				}
				var avl itcAvail
				if len(it.ItcAvl) > 0 && it.ItcAvl[0] == '{' && json.Unmarshal(it.ItcAvl, &avl) == nil {
					itc = append(itc, avl.Camt, avl.Samt, avl.Iamt)
					continue
				}
				itc = append(itc, it.Camt, it.Samt, it.Iamt)
			}
			out = append(out, domain.GSTR2BRecord{
				FilingPeriod:  period.String(),
				SupplierGSTIN: normGSTIN(sup.CTIN),
				SupplierName:  sup.TrdNm,
				InvoiceNumber: inv.Inum,
				InvoiceDate:   inv.Dt,
				InvoiceValue:  money.Round(inv.Val),
				TaxableValue:  money.Round(money.Sum(txval...)),
				CGST:          money.Round(money.Sum(camt...)),
				SGST:          money.Round(money.Sum(samt...)),
				IGST:          money.Round(money.Sum(iamt...)),
				ITCAvailable:  money.Round(money.Sum(itc...)),
			})
		}
	}
	return out, nil
}
