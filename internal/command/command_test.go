package command

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/osuosl/climesync/internal/config"
	"github.com/osuosl/climesync/internal/permission"
	"github.com/osuosl/climesync/internal/prompt"
)

// fakeClient records calls and answers with canned records.
type fakeClient struct {
	user    string
	token   string
	expired bool

	records []Record
	err     error

	calls       []string
	lastObject  Record
	lastQuery   Record
	lastID      string
	lastGetUser string
}

func (f *fakeClient) BaseURL() string { return "https://timesync.example.com/v1" }
func (f *fakeClient) Test() bool      { return false }
func (f *fakeClient) User() string    { return f.user }
func (f *fakeClient) Token() string   { return f.token }

func (f *fakeClient) TokenExpired() (bool, error) { return f.expired, nil }

func (f *fakeClient) Authenticate(ctx context.Context, username, password string) ([]Record, error) {
	f.calls = append(f.calls, "authenticate")
	f.user = username
	f.lastObject = Record{"username": username, "password": password}
	if f.err != nil {
		return nil, f.err
	}
	return []Record{{"token": "tok"}}, nil
}

func (f *fakeClient) object(call string, object Record) ([]Record, error) {
	f.calls = append(f.calls, call)
	f.lastObject = object
	return f.records, f.err
}

func (f *fakeClient) query(call string, query Record) ([]Record, error) {
	f.calls = append(f.calls, call)
	f.lastQuery = query
	return f.records, f.err
}

func (f *fakeClient) byID(call, id string) ([]Record, error) {
	f.calls = append(f.calls, call)
	f.lastID = id
	return f.records, f.err
}

func (f *fakeClient) CreateTime(ctx context.Context, t Record) ([]Record, error) {
	return f.object("create-time", t)
}
func (f *fakeClient) UpdateTime(ctx context.Context, uuid string, t Record) ([]Record, error) {
	f.lastID = uuid
	return f.object("update-time", t)
}
func (f *fakeClient) GetTimes(ctx context.Context, query Record) ([]Record, error) {
	return f.query("get-times", query)
}
func (f *fakeClient) DeleteTime(ctx context.Context, uuid string) ([]Record, error) {
	return f.byID("delete-time", uuid)
}

func (f *fakeClient) CreateProject(ctx context.Context, p Record) ([]Record, error) {
	return f.object("create-project", p)
}
func (f *fakeClient) UpdateProject(ctx context.Context, slug string, p Record) ([]Record, error) {
	f.lastID = slug
	return f.object("update-project", p)
}
func (f *fakeClient) GetProjects(ctx context.Context, query Record) ([]Record, error) {
	return f.query("get-projects", query)
}
func (f *fakeClient) DeleteProject(ctx context.Context, slug string) ([]Record, error) {
	return f.byID("delete-project", slug)
}

func (f *fakeClient) CreateActivity(ctx context.Context, a Record) ([]Record, error) {
	return f.object("create-activity", a)
}
func (f *fakeClient) UpdateActivity(ctx context.Context, slug string, a Record) ([]Record, error) {
	f.lastID = slug
	return f.object("update-activity", a)
}
func (f *fakeClient) GetActivities(ctx context.Context, query Record) ([]Record, error) {
	return f.query("get-activities", query)
}
func (f *fakeClient) DeleteActivity(ctx context.Context, slug string) ([]Record, error) {
	return f.byID("delete-activity", slug)
}

func (f *fakeClient) CreateUser(ctx context.Context, u Record) ([]Record, error) {
	return f.object("create-user", u)
}
func (f *fakeClient) UpdateUser(ctx context.Context, username string, u Record) ([]Record, error) {
	f.lastID = username
	return f.object("update-user", u)
}
func (f *fakeClient) GetUsers(ctx context.Context, username string) ([]Record, error) {
	f.calls = append(f.calls, "get-users")
	f.lastGetUser = username
	return f.records, f.err
}
func (f *fakeClient) DeleteUser(ctx context.Context, username string) ([]Record, error) {
	return f.byID("delete-user", username)
}

type fakeKeyring struct {
	passwords map[string]string
	available bool
}

func (f *fakeKeyring) Get(username string) (string, error) {
	if p, ok := f.passwords[username]; ok {
		return p, nil
	}
	return "", errKeyringMiss
}
func (f *fakeKeyring) Set(username, password string) error {
	f.passwords[username] = password
	return nil
}
func (f *fakeKeyring) Delete(username string) error {
	delete(f.passwords, username)
	return nil
}
func (f *fakeKeyring) Available() bool { return f.available }

var errKeyringMiss = keyringMissError{}

type keyringMissError struct{}

func (keyringMissError) Error() string { return "not found" }

// testApp builds an App with a fake client session and scripted input.
func testApp(input string, client *fakeClient) (*App, *bytes.Buffer) {
	var out bytes.Buffer

	a := &App{
		Config:     make(config.Config),
		ConfigPath: "/tmp/.climesyncrc",
		Prompt:     prompt.New(strings.NewReader(input), &out),
		Out:        &out,
		Keyring:    &fakeKeyring{passwords: map[string]string{}},
		Log:        zap.NewNop(),
	}
	a.NewClient = func(url string, test bool) Client { return client }

	if client != nil {
		a.Session = &Session{Client: client, URL: client.BaseURL()}
	}

	return a, &out
}

func TestEveryCommandRequiresSession(t *testing.T) {
	for _, d := range Registry {
		if !d.Auth {
			continue
		}

		client := &fakeClient{}
		a, _ := testApp("", client)
		a.Session = nil

		res := Execute(a, d, Invocation{Target: "x", Args: map[string]string{}})
		if res.Err == nil || res.Err.Kind != ErrSession {
			t.Fatalf("%s: expected session error, got %+v", d.Name, res)
		}
		if res.Err.Message != "Not connected to TimeSync server" {
			t.Fatalf("%s: message = %q", d.Name, res.Err.Message)
		}
		if len(client.calls) != 0 {
			t.Fatalf("%s: performed calls without a session: %v", d.Name, client.calls)
		}
	}
}

func TestCreateTimeNormalization(t *testing.T) {
	client := &fakeClient{user: "userone", records: []Record{{"uuid": "u-1"}}}
	a, _ := testApp("", client)

	res := createTime(a, Invocation{Args: map[string]string{
		"duration":    "1h0m",
		"project":     "px",
		"activities":  "docs",
		"date_worked": "today",
	}})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}

	today := time.Now().Format("2006-01-02")
	if client.lastObject["date_worked"] != today {
		t.Fatalf("date_worked = %v, want %s", client.lastObject["date_worked"], today)
	}
	if !reflect.DeepEqual(client.lastObject["activities"], []string{"docs"}) {
		t.Fatalf("activities = %v, want one-element list", client.lastObject["activities"])
	}
	if client.lastObject["user"] != "userone" {
		t.Fatalf("user = %v, want authenticated username", client.lastObject["user"])
	}
}

func TestCreateTimeLiteralDatePassesThrough(t *testing.T) {
	client := &fakeClient{user: "userone"}
	a, _ := testApp("", client)

	createTime(a, Invocation{Args: map[string]string{
		"duration":    "600",
		"project":     "px",
		"activities":  "docs",
		"date_worked": "2016-06-15",
	}})

	if client.lastObject["date_worked"] != "2016-06-15" {
		t.Fatalf("date_worked = %v, want unchanged literal", client.lastObject["date_worked"])
	}
}

func TestUpdateTimeOmitsAbsentFields(t *testing.T) {
	client := &fakeClient{}
	a, _ := testApp("", client)

	res := updateTime(a, Invocation{
		Target: "838853e3",
		Args:   map[string]string{"activities": "dev"},
	})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}

	if client.lastID != "838853e3" {
		t.Fatalf("uuid = %q", client.lastID)
	}
	want := Record{"activities": []string{"dev"}}
	if !reflect.DeepEqual(client.lastObject, want) {
		t.Fatalf("payload = %v, want only activities", client.lastObject)
	}
}

func TestGetTimesRewritesDurations(t *testing.T) {
	client := &fakeClient{records: []Record{
		{"duration": float64(3661), "project": []any{"px"}},
	}}
	a, _ := testApp("", client)

	res := getTimes(a, Invocation{Args: map[string]string{}})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Records[0]["duration"] != "1h 1m 1s" {
		t.Fatalf("duration = %v, want 1h 1m 1s", res.Records[0]["duration"])
	}
}

func TestGetTimesWrapsDateBounds(t *testing.T) {
	client := &fakeClient{}
	a, _ := testApp("", client)

	getTimes(a, Invocation{Args: map[string]string{
		"user":  "userone",
		"start": "2016-06-01",
	}})

	if !reflect.DeepEqual(client.lastQuery["user"], []string{"userone"}) {
		t.Fatalf("user = %v, want list", client.lastQuery["user"])
	}
	if !reflect.DeepEqual(client.lastQuery["start"], []string{"2016-06-01"}) {
		t.Fatalf("start = %v, want one-element list", client.lastQuery["start"])
	}
}

func TestGetTimesInteractiveNoResults(t *testing.T) {
	client := &fakeClient{}
	// Eight empty answers: all filters optional.
	a, _ := testApp(strings.Repeat("\n", 8), client)

	res := getTimes(a, Invocation{Interactive: true})
	if res.Note != "No times were returned" {
		t.Fatalf("result = %+v, want no-times note", res)
	}
}

func TestGetTimesScriptedCSV(t *testing.T) {
	client := &fakeClient{}
	a, out := testApp("", client)

	res := getTimes(a, Invocation{Args: map[string]string{}, CSV: true})
	if !res.IsEmpty() {
		t.Fatalf("CSV mode must return an empty result, got %+v", res)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "uuid,") {
		t.Fatalf("expected header-only CSV on stdout, got %q", out.String())
	}
}

func TestSumTimes(t *testing.T) {
	client := &fakeClient{records: []Record{
		{"project": []any{"x"}, "duration": float64(3661)},
		{"project": []any{"x"}, "duration": float64(60)},
		{"project": []any{"y"}, "duration": float64(30)},
	}}
	a, out := testApp("", client)

	res := sumTimes(a, Invocation{Args: map[string]string{"project": "x"}})
	if !res.IsEmpty() {
		t.Fatalf("expected empty result, got %+v", res)
	}
	if !strings.Contains(out.String(), "1h 2m 1s") {
		t.Fatalf("output %q missing 1h 2m 1s total", out.String())
	}
}

func TestSumTimesMalformedResponsePassesThrough(t *testing.T) {
	raw := []Record{{"error": "Server error", "status": float64(500)}}
	client := &fakeClient{records: raw}
	a, _ := testApp("", client)

	res := sumTimes(a, Invocation{Args: map[string]string{"project": "x"}})
	if !reflect.DeepEqual(res.Records, raw) {
		t.Fatalf("expected raw response back, got %+v", res)
	}
}

func TestDeleteDeclined(t *testing.T) {
	client := &fakeClient{}
	a, _ := testApp("838853e3\nn\n", client)

	res := Execute(a, mustLookup(t, "delete-time"), Invocation{Interactive: true})
	if !res.IsEmpty() {
		t.Fatalf("declined delete must return empty, got %+v", res)
	}
	if len(client.calls) != 0 {
		t.Fatalf("declined delete still called the server: %v", client.calls)
	}
}

func TestDeleteConfirmed(t *testing.T) {
	client := &fakeClient{}
	a, _ := testApp("px\ny\n", client)

	res := Execute(a, mustLookup(t, "delete-project"), Invocation{Interactive: true})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if !reflect.DeepEqual(client.calls, []string{"delete-project"}) {
		t.Fatalf("calls = %v, want exactly one delete", client.calls)
	}
	if client.lastID != "px" {
		t.Fatalf("slug = %q", client.lastID)
	}
}

func TestDeleteScriptedSkipsConfirmation(t *testing.T) {
	client := &fakeClient{}
	a, _ := testApp("", client)

	res := Execute(a, mustLookup(t, "delete-user"), Invocation{Target: "userfour"})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if client.lastID != "userfour" || len(client.calls) != 1 {
		t.Fatalf("calls = %v id = %q", client.calls, client.lastID)
	}
}

func TestCreateProjectAccessCodes(t *testing.T) {
	client := &fakeClient{}
	a, _ := testApp("", client)

	res := createProject(a, Invocation{
		Args:        map[string]string{"name": "Project X", "slugs": "px"},
		AccessCodes: map[string]string{"userone": "101"},
	})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}

	users, ok := client.lastObject["users"].(map[string]permission.Permissions)
	if !ok {
		t.Fatalf("users = %T, want permission map", client.lastObject["users"])
	}
	want := permission.Permissions{Member: true, Manager: true}
	if users["userone"] != want {
		t.Fatalf("userone = %+v, want %+v", users["userone"], want)
	}
	if !reflect.DeepEqual(client.lastObject["slugs"], []string{"px"}) {
		t.Fatalf("slugs = %v, want list", client.lastObject["slugs"])
	}
}

func TestCreateProjectBadAccessCode(t *testing.T) {
	client := &fakeClient{}
	a, _ := testApp("", client)

	res := createProject(a, Invocation{
		Args:        map[string]string{"name": "Project X", "slugs": "px"},
		AccessCodes: map[string]string{"userone": "5"},
	})
	if res.Err == nil || res.Err.Kind != ErrValidation {
		t.Fatalf("expected validation error, got %+v", res)
	}
	if len(client.calls) != 0 {
		t.Fatalf("bad access code still reached the server: %v", client.calls)
	}
}

func TestCreateProjectInteractivePermissions(t *testing.T) {
	client := &fakeClient{}
	// name, slugs, uri (blank), users, default activity (blank),
	// then member/spectator/manager questions for userone.
	a, out := testApp("Project X\npx\n\nuserone\n\ny\nn\ny\n", client)

	res := createProject(a, Invocation{Interactive: true})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}

	users := client.lastObject["users"].(map[string]permission.Permissions)
	want := permission.Permissions{Member: true, Manager: true}
	if users["userone"] != want {
		t.Fatalf("userone = %+v, want %+v", users["userone"], want)
	}
	if !strings.Contains(out.String(), "Is userone a project member?") {
		t.Fatalf("permission questions not asked: %q", out.String())
	}
}

func TestGetUsersBySingleUsername(t *testing.T) {
	client := &fakeClient{records: []Record{{"username": "userfour"}}}
	a, _ := testApp("", client)

	res := getUsers(a, Invocation{Args: map[string]string{"username": "userfour"}})
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if client.lastGetUser != "userfour" {
		t.Fatalf("username filter = %q", client.lastGetUser)
	}
}

func TestTokenExpiredGate(t *testing.T) {
	client := &fakeClient{token: "tok", expired: true}
	a, _ := testApp("", client)

	res := Execute(a, mustLookup(t, "get-times"), Invocation{Interactive: true})
	if res.Err == nil || res.Err.Kind != ErrAuth {
		t.Fatalf("expected auth error, got %+v", res)
	}
	if res.Err.Message != "Your token has expired. Please sign in again" {
		t.Fatalf("message = %q", res.Err.Message)
	}
	if len(client.calls) != 0 {
		t.Fatalf("expired token still reached the server: %v", client.calls)
	}
}

func TestRegistryTokensUnique(t *testing.T) {
	seen := map[string]string{}
	for _, d := range Registry {
		if other, ok := seen[d.Token]; ok {
			t.Fatalf("token %q used by %s and %s", d.Token, other, d.Name)
		}
		seen[d.Token] = d.Name
	}

	if _, ok := ByToken("gt"); !ok {
		t.Fatalf("gt must map to a command")
	}
	if _, ok := Lookup("create-time"); !ok {
		t.Fatalf("create-time must be registered")
	}
}

func mustLookup(t *testing.T, name string) Descriptor {
	t.Helper()
	d, ok := Lookup(name)
	if !ok {
		t.Fatalf("command %s not registered", name)
	}
	return d
}
