/*
Package membership provides the membership card registration payload.

A registration needs a card ID, a membership ID with its type and a program
name. Barcode, magnetic tracks, status, user messages, custom claims and
card art are optional:

	barcode, err := membership.NewBarcode(membership.SymbologyQRCode, "1234567890")
	if err != nil {
	    return err
	}

	reg, err := membership.NewRegistration(membership.Registration{
	    CardID:           "321321",
	    MembershipID:     "123",
	    MembershipIDType: membership.IDTypeCardNum,
	    ProgramName:      "Holly membership",
	    Barcode:          barcode,
	    CardStatus:       membership.CardStatusActive,
	})

Validation failures are *registration.ValidationError values carrying the
message of the first missing field.
*/
package membership
