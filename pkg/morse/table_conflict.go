//go:build norwegian && spanish

package morse

// The norwegian and spanish tables give .__._ and ___. to different
// letters. Build with at most one of the two tags.
var _ = norwegianAndSpanishTagsAreMutuallyExclusive
