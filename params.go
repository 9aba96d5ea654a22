package simul

import "strconv"

// Bool returns a pointer to v, for the optional boolean fields of the
// request option structs.
func Bool(v bool) *bool {
	return &v
}

func setBool(q map[string]string, key string, v *bool) {
	if v != nil {
		q[key] = strconv.FormatBool(*v)
	}
}

func setInt(q map[string]string, key string, v int) {
	if v != 0 {
		q[key] = strconv.Itoa(v)
	}
}

func setInt64(q map[string]string, key string, v int64) {
	if v != 0 {
		q[key] = strconv.FormatInt(v, 10)
	}
}

func setString(q map[string]string, key, v string) {
	if v != "" {
		q[key] = v
	}
}
