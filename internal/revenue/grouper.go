package revenue

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// GroupByOrder folds flat sold rows into one group per order. The first row
// seen for an order seeds its status and date; later rows for the same order
// are assumed consistent and only contribute items and totals.
func GroupByOrder(rows []SoldProduct) []OrderGroup {
	byOrder := map[uint]*OrderGroup{}
	keys := []uint{}

	for _, row := range rows {
		g, ok := byOrder[row.OrderID]
		if !ok {
			g = &OrderGroup{
				OrderID:     row.OrderID,
				OrderStatus: row.OrderStatus,
				SoldDate:    row.SoldDate,
			}
			byOrder[row.OrderID] = g
			keys = append(keys, row.OrderID)
		}
		g.Items = append(g.Items, row)
		g.OrderTotal += row.TotalAmount
	}

	groups := make([]OrderGroup, 0, len(keys))
	for _, id := range keys {
		groups = append(groups, *byOrder[id])
	}

	// Most recent order first. A missing or garbled date sorts as epoch.
	sort.SliceStable(groups, func(i, j int) bool {
		return parseSoldDate(groups[i].SoldDate).After(parseSoldDate(groups[j].SoldDate))
	})

	return groups
}

func parseSoldDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Unix(0, 0)
	}
	return t
}
