package sarif

import "strings"

// Aqua's vulnerability database mirrors NVD entries under a vendor path.
// Links are pointed back at the public NVD detail page.
const (
	vendorAdvisoryPrefix = "avd.aquasec.com/nvd/"
	publicAdvisoryPrefix = "nvd.nist.gov/vuln/detail/"
)

// RewriteVendorLinks replaces every vendor advisory URL prefix in text with
// the public NVD prefix. It is a literal substitution; URLs are not parsed.
func RewriteVendorLinks(text string) string {
	return strings.ReplaceAll(text, vendorAdvisoryPrefix, publicAdvisoryPrefix)
}
