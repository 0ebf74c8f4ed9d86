package membership

// Symbology is a barcode encoding
type Symbology string

// Supported barcode symbologies
const (
	SymbologyAztec           Symbology = "AZTEC"
	SymbologyCodabar         Symbology = "CODABAR"
	SymbologyCode39          Symbology = "CODE_39"
	SymbologyCode93          Symbology = "CODE_93"
	SymbologyCode128         Symbology = "CODE_128"
	SymbologyDataMatrix      Symbology = "DATA_MATRIX"
	SymbologyEAN8            Symbology = "EAN_8"
	SymbologyEAN13           Symbology = "EAN_13"
	SymbologyITF             Symbology = "ITF"
	SymbologyMaxiCode        Symbology = "MAXICODE"
	SymbologyPDF417          Symbology = "PDF_417"
	SymbologyQRCode          Symbology = "QR_CODE"
	SymbologyRSS14           Symbology = "RSS_14"
	SymbologyRSSExpanded     Symbology = "RSS_EXPANDED"
	SymbologyUPCA            Symbology = "UPC_A"
	SymbologyUPCE            Symbology = "UPC_E"
	SymbologyUPCEANExtension Symbology = "UPC_EAN_EXTENSION"
)

var symbologies = map[Symbology]struct{}{
	SymbologyAztec:           {},
	SymbologyCodabar:         {},
	SymbologyCode39:          {},
	SymbologyCode93:          {},
	SymbologyCode128:         {},
	SymbologyDataMatrix:      {},
	SymbologyEAN8:            {},
	SymbologyEAN13:           {},
	SymbologyITF:             {},
	SymbologyMaxiCode:        {},
	SymbologyPDF417:          {},
	SymbologyQRCode:          {},
	SymbologyRSS14:           {},
	SymbologyRSSExpanded:     {},
	SymbologyUPCA:            {},
	SymbologyUPCE:            {},
	SymbologyUPCEANExtension: {},
}

// Valid reports whether s is a known symbology
func (s Symbology) Valid() bool {
	_, ok := symbologies[s]
	return ok
}

// CardStatus is the lifecycle state of a membership card
type CardStatus string

const (
	CardStatusInactive CardStatus = "INACTIVE"
	CardStatusActive   CardStatus = "ACTIVE"
)

// Valid reports whether s is a known card status
func (s CardStatus) Valid() bool {
	return s == CardStatusActive || s == CardStatusInactive
}

// IDType says how the membership ID should be read
type IDType string

// IDTypeCardNum marks the membership ID as a card number
const IDTypeCardNum IDType = "CARDNUM"

// Valid reports whether t is a known ID type
func (t IDType) Valid() bool {
	return t == IDTypeCardNum
}
