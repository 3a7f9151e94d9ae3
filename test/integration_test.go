// ABOUTME: Integration tests for clinic CLI.
// ABOUTME: Builds the binary and exercises the full patient/visit/stock flow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	projectRoot, _ := filepath.Abs("..")
	clinicBinary := filepath.Join(projectRoot, "clinic-test-bin")

	buildCmd := exec.Command("go", "build", "-o", clinicBinary, "./cmd/clinic")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(clinicBinary)

	// Isolated config and data dirs so the test never touches real records.
	tmpDir := t.TempDir()

	run := func(args ...string) (string, error) {
		cmd := exec.Command(clinicBinary, args...)
		cmd.Env = append(os.Environ(),
			"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
			"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
			"NO_COLOR=1",
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	mustRun := func(args ...string) string {
		t.Helper()
		output, err := run(args...)
		if err != nil {
			t.Fatalf("clinic %s failed: %v\n%s", strings.Join(args, " "), err, output)
		}
		return output
	}

	// Patient lifecycle
	output := mustRun("patient", "add", "Ali Khan", "--phone", "0300-1234567", "--age", "34")
	if !strings.Contains(output, "Registered Ali Khan") {
		t.Errorf("unexpected add output: %s", output)
	}

	output = mustRun("patient", "search", "khan")
	if !strings.Contains(output, "Ali Khan") {
		t.Errorf("search did not find patient: %s", output)
	}

	// Visit with medicine text; the tally should pick up both names.
	mustRun("visit", "add", "1",
		"--complaints", "Fever",
		"--medicine", "Arnica 30, Belladonna 200",
		"--fees", "500")

	output = mustRun("visit", "today")
	if !strings.Contains(output, "Ali Khan") || !strings.Contains(output, "Rs.500") {
		t.Errorf("unexpected today output: %s", output)
	}

	output = mustRun("tally", "list")
	if !strings.Contains(output, "Arnica 30") || !strings.Contains(output, "Belladonna 200") {
		t.Errorf("tally missing prescribed medicines: %s", output)
	}

	output = mustRun("earnings")
	if !strings.Contains(output, "Rs.500") {
		t.Errorf("unexpected earnings output: %s", output)
	}

	// Pharmacy flow: catalog, stock in, dispense, ledger check.
	mustRun("medicine", "add", "Arnica Montana", "--category", "DILUTION")
	mustRun("variant", "add", "1", "--potency", "30C", "--form", "liquid", "--min-stock", "5")
	mustRun("stock", "add", "1", "50", "--ref-id", "PO-001")
	mustRun("stock", "dispense", "1", "2")

	output = mustRun("stock", "level", "1")
	if !strings.Contains(output, "48") {
		t.Errorf("unexpected stock level: %s", output)
	}

	// Over-dispense must fail and leave the quantity alone.
	if out, err := run("stock", "dispense", "1", "100"); err == nil {
		t.Errorf("over-dispense should fail, got: %s", out)
	}
	output = mustRun("stock", "level", "1")
	if !strings.Contains(output, "48") {
		t.Errorf("failed dispense changed stock: %s", output)
	}

	output = mustRun("stock", "movements", "1")
	if !strings.Contains(output, "IN") || !strings.Contains(output, "OUT") {
		t.Errorf("ledger missing movements: %s", output)
	}

	output = mustRun("stock", "reconcile")
	if !strings.Contains(output, "matches the movement ledger") {
		t.Errorf("unexpected reconcile output: %s", output)
	}

	// Users: the seeded default verifies, then the password changes.
	output = mustRun("user", "verify", "admin", "admin")
	if !strings.Contains(output, "Credentials valid") {
		t.Errorf("seeded admin should verify: %s", output)
	}
	mustRun("user", "passwd", "admin", "admin", "s3cret")
	output = mustRun("user", "verify", "admin", "admin")
	if !strings.Contains(output, "Invalid credentials") {
		t.Errorf("old password should no longer verify: %s", output)
	}

	// Export
	backupPath := filepath.Join(tmpDir, "backup.yaml")
	mustRun("export", "backup", backupPath, "--format", "yaml")
	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("backup not written: %v", err)
	}
	if !strings.Contains(string(data), "Ali Khan") {
		t.Errorf("backup missing patient data")
	}
}
