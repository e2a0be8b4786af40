package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/emersion/go-vcard"
	"github.com/google/uuid"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// VCard renders rec as a vCard 4.0 card.
// The UID is derived from the lowercase name, so the same contact always
// produces the same UID.
func VCard(rec *book.Record) (string, error) {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldFormattedName, rec.Name())
	card.SetValue(vcard.FieldUID, ContactUID(rec.Name()))

	for _, p := range rec.Phones() {
		card.Add(vcard.FieldTelephone, &vcard.Field{
			Value:  p.String(),
			Params: vcard.Params{vcard.ParamType: {config.VCardTelType}},
		})
	}

	if bday, ok := rec.Birthday(); ok {
		card.SetValue(vcard.FieldBirthday, bday.Date().Format(config.DateFormatVCard))
	}

	vcard.ToV4(card)

	var buf bytes.Buffer
	if err := vcard.NewEncoder(&buf).Encode(card); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
	}
	return buf.String(), nil
}

// ContactUID returns the stable urn:uuid identifier of a contact name.
func ContactUID(name string) string {
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(config.UIDSalt+strings.ToLower(name)))
	return config.VCardUIDPrefix + id.String()
}
