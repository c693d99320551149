
package classifier

import "strings"

// RetailerList matches URLs against known retailer domains.
type RetailerList struct {
	domains []string
}

// NewRetailerList normalizes entries such as "https://www.shop.com/home" to
// "shop.com". Entries that normalize to nothing are dropped since they would
// match every URL.
func NewRetailerList(entries []string) *RetailerList {
	rl := &RetailerList{}
	for _, e := range entries {
		if d := normalizeDomain(e); d != "" {
			rl.domains = append(rl.domains, d)
		}
	}
	return rl
}

func normalizeDomain(entry string) string {
	d := strings.ToLower(strings.TrimSpace(entry))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	if i := strings.Index(d, "/"); i >= 0 {
		d = d[:i]
	}
	// drop the first label
	if i := strings.Index(d, "."); i >= 0 {
		d = d[i+1:]
	}
	return d
}

func (r *RetailerList) Len() int {
	if r == nil {
		return 0
	}
	return len(r.domains)
}

// Contains reports whether u contains any listed domain.
func (r *RetailerList) Contains(u string) bool {
	if r == nil {
		return false
	}
	u = strings.ToLower(u)
	for _, d := range r.domains {
		if strings.Contains(u, d) {
			return true
		}
	}
	return false
}
