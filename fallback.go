package declutter

// DefaultMinContentLength is the content length below which a result is
// considered thin.
const DefaultMinContentLength = 200

// Ensure FallbackExtractor implements Extractor at compile time.
var _ Extractor = (*FallbackExtractor)(nil)

// FallbackExtractor runs Primary and consults Secondary when the primary
// result fails or is thin. The longer of the two results wins.
type FallbackExtractor struct {
	Primary   Extractor
	Secondary Extractor

	// MinLength is the ContentHTML length below which Secondary is tried.
	// Defaults to DefaultMinContentLength.
	MinLength int
}

// Extract processes raw HTML and returns the main content.
func (e *FallbackExtractor) Extract(html string) (*ExtractResult, error) {
	minLength := e.MinLength
	if minLength <= 0 {
		minLength = DefaultMinContentLength
	}

	primary, err := e.Primary.Extract(html)
	if err == nil && len(primary.ContentHTML) >= minLength {
		return primary, nil
	}
	if e.Secondary == nil {
		return primary, err
	}

	secondary, secondaryErr := e.Secondary.Extract(html)
	if secondaryErr != nil {
		if err != nil {
			return nil, err
		}
		return primary, nil
	}
	if err != nil || len(secondary.ContentHTML) > len(primary.ContentHTML) {
		return secondary, nil
	}
	return primary, nil
}
