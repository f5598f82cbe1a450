package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "secret1" {
		t.Fatalf("digest must not equal the plaintext")
	}
	if !Verify("secret1", digest) {
		t.Fatalf("expected Verify to accept the original password")
	}
	if Verify("wrong", digest) {
		t.Fatalf("expected Verify to reject a wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := Hash("secret1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password must differ")
	}
	if !Verify("secret1", first) || !Verify("secret1", second) {
		t.Fatalf("both salted hashes must verify against the password")
	}
}

func TestVerifyMalformedDigest(t *testing.T) {
	if Verify("secret1", "not-a-bcrypt-hash") {
		t.Fatalf("malformed digest must not verify")
	}
}
