package hash

import "testing"

func TestJenkinsDeterministic(t *testing.T) {
	key := []byte("hello-world-key")
	a := Jenkins(key)
	b := Jenkins(append([]byte(nil), key...))
	if a != b {
		t.Fatalf("Jenkins not deterministic: %d != %d", a, b)
	}
}

func TestJenkinsDistinguishesKeys(t *testing.T) {
	if Jenkins([]byte("key-a")) == Jenkins([]byte("key-b")) {
		t.Fatal("expected distinct hashes for distinct short keys (not guaranteed, but overwhelmingly likely)")
	}
}

func TestXXHash64Deterministic(t *testing.T) {
	key := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if XXHash64(key) != XXHash64(append([]byte(nil), key...)) {
		t.Fatal("XXHash64 not deterministic")
	}
}

func TestXXH3Deterministic(t *testing.T) {
	key := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if XXH3(key) != XXH3(append([]byte(nil), key...)) {
		t.Fatal("XXH3 not deterministic")
	}
}

func TestFuncsSatisfyContract(t *testing.T) {
	var fns = []Func{Jenkins, XXHash64, XXH3}
	for _, f := range fns {
		_ = f([]byte("abc"))
	}
}
