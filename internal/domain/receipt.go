package domain

// Receipt mirrors the parts of INSTALL_RECEIPT.json we care about:
// where the keg came from and whether the user asked for it.
type Receipt struct {
	Source                ReceiptSource `json:"source"`
	InstalledAsDependency bool          `json:"installed_as_dependency"`
	InstalledOnRequest    bool          `json:"installed_on_request"`
}

type ReceiptSource struct {
	Spec     ReceiptSpec     `json:"spec"`
	Versions ReceiptVersions `json:"versions"`
}

// ReceiptSpec is the source spec a formula was installed from.
type ReceiptSpec string

const (
	SpecStable ReceiptSpec = "stable"
	SpecHead   ReceiptSpec = "head"
)

type ReceiptVersions struct {
	Stable string `json:"stable"`
	Head   string `json:"head,omitempty"`
}

// Version resolves the installed version for the source spec. Head
// installs without a recorded head version report "HEAD".
func (s ReceiptSource) Version() string {
	if s.Spec == SpecHead {
		if s.Versions.Head == "" {
			return "HEAD"
		}
		return s.Versions.Head
	}
	return s.Versions.Stable
}
