package domain

import "strconv"

const projectIDPrefix = "proj"

// NextProjectID allocates the id for a new project.
// The candidate is "proj" + (len+1); if that id is already taken the number is
// bumped until it is free, so sequential documents keep proj1..projN.
func NextProjectID(projects []Project) string {
	taken := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		taken[p.ID()] = struct{}{}
	}

	for n := len(projects) + 1; ; n++ {
		id := projectIDPrefix + strconv.Itoa(n)
		if _, ok := taken[id]; !ok {
			return id
		}
	}
}
