package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-vcard"
)

var cardHeaders = []string{"firstName", "lastName", "email", "phone", "company"}

// parseCards maps each card to a fixed set of fields. Cards whose formatted name has no token
// are dropped.
func parseCards(data []byte) ([]RawRecord, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}

	dec := vcard.NewDecoder(bytes.NewReader(text))
	records := make([]RawRecord, 0)

	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode card: %w", err)
		}

		nameParts := strings.Fields(card.Value(vcard.FieldFormattedName))
		if len(nameParts) == 0 {
			continue
		}

		company, _, _ := strings.Cut(card.Value(vcard.FieldOrganization), ";")

		records = append(records, RawRecord{
			Headers: cardHeaders,
			Values: map[string]string{
				"firstName": nameParts[0],
				"lastName":  strings.Join(nameParts[1:], " "),
				"email":     strings.TrimSpace(card.Value(vcard.FieldEmail)),
				"phone":     strings.TrimSpace(card.Value(vcard.FieldTelephone)),
				"company":   strings.TrimSpace(company),
			},
		})
	}

	return records, nil
}
