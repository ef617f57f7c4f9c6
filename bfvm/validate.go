package bfvm

// Validate checks that every bracket in source has a partner.
// It returns a *StructuralError on the first unmatched ']', or listing every unmatched '['.
func Validate(source string) error {
	var opens []int
	for i := 0; i < len(source); i++ {
		switch source[i] {
		case '[':
			opens = append(opens, i)
		case ']':
			if len(opens) == 0 {
				return &StructuralError{
					Close: i,
				}
			}
			opens = opens[:len(opens)-1]
		}
	}
	if len(opens) > 0 {
		return &StructuralError{
			Close: -1,
			Open:  opens,
		}
	}
	return nil
}
