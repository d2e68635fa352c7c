package domain

type VerificationReport struct {
	PackagesImportable bool
	ConfigPresent      bool
	NotebookPresent    bool
	// FailedModule names the first module that could not be imported.
	FailedModule string
}

// Passed reports the verdict. Missing config or notebook files are warnings only.
func (r VerificationReport) Passed() bool {
	return r.PackagesImportable
}
