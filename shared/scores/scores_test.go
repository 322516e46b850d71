package scores

import (
	"errors"
	"testing"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/gameconfig"
	"golang.org/x/crypto/bcrypt"
)

func TestHighScoresOrdering(t *testing.T) {
	s := NewKVStore(NewMemoryKV())
	inserts := []Record{
		{"A", gameconfig.Easy, 5},
		{"B", gameconfig.Easy, 20},
		{"C", gameconfig.Easy, 10},
		{"D", gameconfig.Hard, 99},
	}
	for _, r := range inserts {
		if err := s.InsertScore(r.Player, r.Difficulty, r.Score); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.HighScores(gameconfig.Easy, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []HighScore{{"B", 20}, {"C", 10}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHighScoresTiesKeepInsertionOrder(t *testing.T) {
	s := NewKVStore(NewMemoryKV())
	for _, name := range []string{"first", "second", "third"} {
		if err := s.InsertScore(name, gameconfig.Normal, 7); err != nil {
			t.Fatal(err)
		}
	}
	got, err := s.HighScores(gameconfig.Normal, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i, name := range []string{"first", "second", "third"} {
		if got[i].Name != name {
			t.Errorf("row %d = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestHighScoresEmpty(t *testing.T) {
	s := NewKVStore(NewMemoryKV())
	got, err := s.HighScores(gameconfig.Hard, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

type failingKV struct{ err error }

func (f failingKV) LoadItem(string) ([]byte, error) { return nil, nil }
func (f failingKV) SaveItem(string, []byte) error  { return f.err }

func TestInsertScorePropagatesWriteFailure(t *testing.T) {
	boom := errors.New("disk full")
	s := NewKVStore(failingKV{err: boom})
	if err := s.InsertScore("A", gameconfig.Easy, 1); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}

func TestCorruptScoresReportError(t *testing.T) {
	kv := NewMemoryKV()
	_ = kv.SaveItem(scoresKey, []byte("{not json"))
	if _, err := NewKVStore(kv).HighScores(gameconfig.Easy, 3); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestAccounts(t *testing.T) {
	a := NewAccounts(NewMemoryKV(), bcrypt.MinCost)

	created, err := a.SignIn("mehmet", "hunter2")
	if err != nil || !created {
		t.Fatalf("first sign in = %v, %v; want created", created, err)
	}
	created, err = a.SignIn("mehmet", "hunter2")
	if err != nil || created {
		t.Fatalf("second sign in = %v, %v; want existing", created, err)
	}
	if _, err := a.SignIn("mehmet", "wrong"); !errors.Is(err, ErrRejected) {
		t.Fatalf("wrong password err = %v, want ErrRejected", err)
	}
}

func TestAccountsRejectBlank(t *testing.T) {
	a := NewAccounts(NewMemoryKV(), bcrypt.MinCost)
	for _, c := range [][2]string{{"", "pw"}, {"name", ""}, {"   ", "pw"}} {
		if _, err := a.SignIn(c[0], c[1]); !errors.Is(err, ErrEmptyCredentials) {
			t.Errorf("SignIn(%q, %q) err = %v, want ErrEmptyCredentials", c[0], c[1], err)
		}
	}
}

func TestAccountsNeverStorePlainPassword(t *testing.T) {
	kv := NewMemoryKV()
	a := NewAccounts(kv, bcrypt.MinCost)
	if _, err := a.SignIn("p", "plaintext-secret"); err != nil {
		t.Fatal(err)
	}
	data, _ := kv.LoadItem(accountsKey)
	if len(data) == 0 {
		t.Fatal("nothing stored")
	}
	for i := 0; i+len("plaintext-secret") <= len(data); i++ {
		if string(data[i:i+len("plaintext-secret")]) == "plaintext-secret" {
			t.Fatal("plain password found in storage")
		}
	}
}
