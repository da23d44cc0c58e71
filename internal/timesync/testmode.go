package timesync

import "time"

// Canned responses for test mode. The shapes mirror what a real server
// returns closely enough for the interactive flow to be exercised end to
// end without a TimeSync instance.

const (
	testToken = "TESTTOKEN"
	testUUID  = "838853e3-3635-4076-a26f-7efb4e60981f"
)

// testEcho answers a create/update/get locally by echoing the supplied
// object back with server-assigned bookkeeping fields.
func testEcho(entity, id string, object Record) []Record {
	out := Record{}
	for k, v := range object {
		out[k] = v
	}

	out["created_at"] = time.Now().Format("2006-01-02")
	out["revision"] = 1

	switch entity {
	case "times":
		if id == "" {
			id = testUUID
		}
		out["uuid"] = id
		if _, ok := out["duration"]; !ok {
			out["duration"] = 12
		}
	case "projects", "activities":
		if id != "" {
			out["slug"] = id
		}
	case "users":
		if id != "" {
			out["username"] = id
		}
		// A password must never be echoed back, even by the fake.
		delete(out, "password")
	}

	return []Record{out}
}

func testUsers(username string) []Record {
	if username == "" {
		username = "testuser"
	}
	return []Record{{
		"username":     username,
		"display_name": "Test User",
		"email":        username + "@example.com",
		"site_admin":   false,
		"site_manager": false,
		"active":       true,
	}}
}
