//go:build integration

package testhelpers

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Fixture addresses: two in Fitzroy (inside a 0.1 box around FitzroyLat/Lon), one in Sydney
const (
	FitzroyLat = -37.8
	FitzroyLon = 144.98

	PlaceSmithSt   = "place-smith-st"
	PlaceBrunswick = "place-brunswick-st"
	PlaceSydney    = "place-george-st"
)

// LoadFixtures seeds users, addresses, listings and tags used by the repository suites.
// Returns the user IDs in insertion order.
func LoadFixtures(ctx context.Context, db *sqlx.DB) ([]int64, error) {
	var userIDs []int64
	for _, email := range []string{"ana@example.com", "ben@example.com"} {
		var id int64
		err := db.QueryRowxContext(ctx,
			`INSERT INTO users (pwd, email, username) VALUES ('hash', $1, $2) RETURNING user_id`,
			email, email[:3]).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("insert user %s: %w", email, err)
		}
		userIDs = append(userIDs, id)
	}

	addresses := `
		INSERT INTO addresses (place_id, lat, lon, street_no, street_name, town_city, country, unit_no) VALUES
			('place-smith-st',     -37.800000, 144.980000, '12',  'Smith Street',     'Fitzroy', 'AU', '4'),
			('place-brunswick-st', -37.700000, 144.900000, '300', 'Brunswick Street', 'Fitzroy', 'AU', NULL),
			('place-george-st',    -33.870000, 151.200000, '1',   'George Street',    'Sydney',  'AU', NULL)
	`
	if _, err := db.ExecContext(ctx, addresses); err != nil {
		return nil, fmt.Errorf("insert addresses: %w", err)
	}

	listings := []struct {
		title, description, placeID string
		userID                      int64
		tags                        []string
	}{
		{"Fresh eggs", "A dozen free range eggs", PlaceSmithSt, userIDs[0], []string{"eggs", "organic"}},
		{"Lemons", "Backyard lemons, 100% spray free", PlaceSmithSt, userIDs[0], []string{"fruit"}},
		{"Sourdough", "Day old loaves", PlaceBrunswick, userIDs[1], []string{"bread", "organic"}},
		{"Harbour figs", "Ripe figs", PlaceSydney, userIDs[1], []string{"fruit"}},
	}

	for _, l := range listings {
		var id int64
		err := db.QueryRowxContext(ctx, `
			INSERT INTO listings (title, description, pickup_instructions, user_id, place_id)
			VALUES ($1, $2, 'Knock at the door', $3, $4) RETURNING listing_id`,
			l.title, l.description, l.userID, l.placeID).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("insert listing %s: %w", l.title, err)
		}
		for pos, tag := range l.tags {
			if _, err := db.ExecContext(ctx,
				`INSERT INTO tags (listing_id, tag, position) VALUES ($1, $2, $3)`, id, tag, pos+1); err != nil {
				return nil, fmt.Errorf("insert tag %s: %w", tag, err)
			}
		}
	}

	return userIDs, nil
}
