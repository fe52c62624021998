package brn

import "strconv"

// EntityType is the kind of business encoded by the class code (digits 4-5).
type EntityType uint8

const (
	// EntityUndefined covers class codes with no assigned meaning (00, 80, 83, 84, 89).
	EntityUndefined EntityType = iota
	// IndividualTaxable is an individual VAT-taxable business, codes 01-79.
	IndividualTaxable
	// IndividualTaxExempt is an individual VAT-exempt business, codes 90-99.
	IndividualTaxExempt
	// ForProfitCorporateHQ is the head office of a for-profit corporation, codes 81, 86, 87, 88.
	ForProfitCorporateHQ
	// NonProfitCorporation is a non-profit corporation, code 82.
	NonProfitCorporation
	// ForProfitCorporateBranch is a branch of a for-profit corporation, code 85.
	ForProfitCorporateBranch
)

var entityTypeNames = [...]string{
	EntityUndefined:          "undefined",
	IndividualTaxable:        "individual_taxable",
	IndividualTaxExempt:      "individual_tax_exempt",
	ForProfitCorporateHQ:     "for_profit_corporate_hq",
	NonProfitCorporation:     "non_profit_corporation",
	ForProfitCorporateBranch: "for_profit_corporate_branch",
}

func (t EntityType) String() string {
	if int(t) < len(entityTypeNames) {
		return entityTypeNames[t]
	}
	return "EntityType(" + strconv.Itoa(int(t)) + ")"
}

// IsIndividual reports whether the business is run by an individual.
func (t EntityType) IsIndividual() bool {
	return t == IndividualTaxable || t == IndividualTaxExempt
}

// IsCorporation reports whether the business is a corporation of any kind.
func (t EntityType) IsCorporation() bool {
	return t == ForProfitCorporateHQ || t == NonProfitCorporation || t == ForProfitCorporateBranch
}

// EntityTypeOf maps a two digit class code to its entity type.
// Anything that is not exactly two digits is EntityUndefined.
func EntityTypeOf(code string) EntityType {
	if len(code) != ClassLength || !allDigits(code) {
		return EntityUndefined
	}
	n := int(code[0]-'0')*10 + int(code[1]-'0')

	switch {
	case n >= 1 && n <= 79:
		return IndividualTaxable
	case n >= 90:
		return IndividualTaxExempt
	case n == 81, n == 86, n == 87, n == 88:
		return ForProfitCorporateHQ
	case n == 82:
		return NonProfitCorporation
	case n == 85:
		return ForProfitCorporateBranch
	default:
		return EntityUndefined
	}
}
