package handlers

import "strconv"

// parseID converts a path parameter to an entity id. Callers treat a
// malformed id the same as a missing row: the request 404s.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseIDList converts submitted relation ids to the foreign key's native
// type. Unparseable values are dropped, matching the fetch-by-id-set
// contract where unknown ids are silently ignored.
func parseIDList(values []string) []uint {
	ids := make([]uint, 0, len(values))
	for _, v := range values {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}
