package utils

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Problem is a LeetCode problem known to the bot. ID is the frontend id
// shown on leetcode.com.
type Problem struct {
	ID         int64
	Slug       string
	Title      string
	Difficulty string
	PaidOnly   bool
}

func (p Problem) URL() string {
	return "https://leetcode.com/problems/" + p.Slug + "/"
}

// problemCatalog is the static problem table the bot resolves ids and slugs against.
var problemCatalog = map[int64]Problem{
	1: {Slug: "two-sum", Title: "Two Sum", Difficulty: DifficultyEasy},
	2: {Slug: "add-two-numbers", Title: "Add Two Numbers", Difficulty: DifficultyMedium},
	3: {Slug: "longest-substring-without-repeating-characters", Title: "Longest Substring Without Repeating Characters", Difficulty: DifficultyMedium},
	4: {Slug: "median-of-two-sorted-arrays", Title: "Median of Two Sorted Arrays", Difficulty: DifficultyHard},
	5: {Slug: "longest-palindromic-substring", Title: "Longest Palindromic Substring", Difficulty: DifficultyMedium},
	7: {Slug: "reverse-integer", Title: "Reverse Integer", Difficulty: DifficultyMedium},
	8: {Slug: "string-to-integer-atoi", Title: "String to Integer (atoi)", Difficulty: DifficultyMedium},
	9: {Slug: "palindrome-number", Title: "Palindrome Number", Difficulty: DifficultyEasy},
	11: {Slug: "container-with-most-water", Title: "Container With Most Water", Difficulty: DifficultyMedium},
	13: {Slug: "roman-to-integer", Title: "Roman to Integer", Difficulty: DifficultyEasy},
	14: {Slug: "longest-common-prefix", Title: "Longest Common Prefix", Difficulty: DifficultyEasy},
	15: {Slug: "three-sum", Title: "3Sum", Difficulty: DifficultyMedium},
	19: {Slug: "remove-nth-node-from-end-of-list", Title: "Remove Nth Node From End of List", Difficulty: DifficultyMedium},
	20: {Slug: "valid-parentheses", Title: "Valid Parentheses", Difficulty: DifficultyEasy},
	21: {Slug: "merge-two-sorted-lists", Title: "Merge Two Sorted Lists", Difficulty: DifficultyEasy},
	22: {Slug: "generate-parentheses", Title: "Generate Parentheses", Difficulty: DifficultyMedium},
	23: {Slug: "merge-k-sorted-lists", Title: "Merge k Sorted Lists", Difficulty: DifficultyHard},
	26: {Slug: "remove-duplicates-from-sorted-array", Title: "Remove Duplicates from Sorted Array", Difficulty: DifficultyEasy},
	27: {Slug: "remove-element", Title: "Remove Element", Difficulty: DifficultyEasy},
	28: {Slug: "find-the-index-of-the-first-occurrence-in-a-string", Title: "Find the Index of the First Occurrence in a String", Difficulty: DifficultyEasy},
	33: {Slug: "search-in-rotated-sorted-array", Title: "Search in Rotated Sorted Array", Difficulty: DifficultyMedium},
	34: {Slug: "find-first-and-last-position-of-element-in-sorted-array", Title: "Find First and Last Position of Element in Sorted Array", Difficulty: DifficultyMedium},
	35: {Slug: "search-insert-position", Title: "Search Insert Position", Difficulty: DifficultyEasy},
	39: {Slug: "combination-sum", Title: "Combination Sum", Difficulty: DifficultyMedium},
	42: {Slug: "trapping-rain-water", Title: "Trapping Rain Water", Difficulty: DifficultyHard},
	46: {Slug: "permutations", Title: "Permutations", Difficulty: DifficultyMedium},
	48: {Slug: "rotate-image", Title: "Rotate Image", Difficulty: DifficultyMedium},
	49: {Slug: "group-anagrams", Title: "Group Anagrams", Difficulty: DifficultyMedium},
	53: {Slug: "maximum-subarray", Title: "Maximum Subarray", Difficulty: DifficultyMedium},
	54: {Slug: "spiral-matrix", Title: "Spiral Matrix", Difficulty: DifficultyMedium},
	55: {Slug: "jump-game", Title: "Jump Game", Difficulty: DifficultyMedium},
	56: {Slug: "merge-intervals", Title: "Merge Intervals", Difficulty: DifficultyMedium},
	62: {Slug: "unique-paths", Title: "Unique Paths", Difficulty: DifficultyMedium},
	64: {Slug: "minimum-path-sum", Title: "Minimum Path Sum", Difficulty: DifficultyMedium},
	66: {Slug: "plus-one", Title: "Plus One", Difficulty: DifficultyEasy},
	67: {Slug: "add-binary", Title: "Add Binary", Difficulty: DifficultyEasy},
	69: {Slug: "sqrtx", Title: "Sqrt(x)", Difficulty: DifficultyEasy},
	70: {Slug: "climbing-stairs", Title: "Climbing Stairs", Difficulty: DifficultyEasy},
	73: {Slug: "set-matrix-zeroes", Title: "Set Matrix Zeroes", Difficulty: DifficultyMedium},
	75: {Slug: "sort-colors", Title: "Sort Colors", Difficulty: DifficultyMedium},
	76: {Slug: "minimum-window-substring", Title: "Minimum Window Substring", Difficulty: DifficultyHard},
	78: {Slug: "subsets", Title: "Subsets", Difficulty: DifficultyMedium},
	79: {Slug: "word-search", Title: "Word Search", Difficulty: DifficultyMedium},
	84: {Slug: "largest-rectangle-in-histogram", Title: "Largest Rectangle in Histogram", Difficulty: DifficultyHard},
	88: {Slug: "merge-sorted-array", Title: "Merge Sorted Array", Difficulty: DifficultyEasy},
	91: {Slug: "decode-ways", Title: "Decode Ways", Difficulty: DifficultyMedium},
	94: {Slug: "binary-tree-inorder-traversal", Title: "Binary Tree Inorder Traversal", Difficulty: DifficultyEasy},
	98: {Slug: "validate-binary-search-tree", Title: "Validate Binary Search Tree", Difficulty: DifficultyMedium},
	100: {Slug: "same-tree", Title: "Same Tree", Difficulty: DifficultyEasy},
	101: {Slug: "symmetric-tree", Title: "Symmetric Tree", Difficulty: DifficultyEasy},
	102: {Slug: "binary-tree-level-order-traversal", Title: "Binary Tree Level Order Traversal", Difficulty: DifficultyMedium},
	104: {Slug: "maximum-depth-of-binary-tree", Title: "Maximum Depth of Binary Tree", Difficulty: DifficultyEasy},
	105: {Slug: "construct-binary-tree-from-preorder-and-inorder-traversal", Title: "Construct Binary Tree from Preorder and Inorder Traversal", Difficulty: DifficultyMedium},
	110: {Slug: "balanced-binary-tree", Title: "Balanced Binary Tree", Difficulty: DifficultyEasy},
	111: {Slug: "minimum-depth-of-binary-tree", Title: "Minimum Depth of Binary Tree", Difficulty: DifficultyEasy},
	112: {Slug: "path-sum", Title: "Path Sum", Difficulty: DifficultyEasy},
	118: {Slug: "pascals-triangle", Title: "Pascal's Triangle", Difficulty: DifficultyEasy},
	121: {Slug: "best-time-to-buy-and-sell-stock", Title: "Best Time to Buy and Sell Stock", Difficulty: DifficultyEasy},
	125: {Slug: "valid-palindrome", Title: "Valid Palindrome", Difficulty: DifficultyEasy},
	128: {Slug: "longest-consecutive-sequence", Title: "Longest Consecutive Sequence", Difficulty: DifficultyMedium},
	133: {Slug: "clone-graph", Title: "Clone Graph", Difficulty: DifficultyMedium},
	134: {Slug: "gas-station", Title: "Gas Station", Difficulty: DifficultyMedium},
	136: {Slug: "single-number", Title: "Single Number", Difficulty: DifficultyEasy},
	138: {Slug: "copy-list-with-random-pointer", Title: "Copy List with Random Pointer", Difficulty: DifficultyMedium},
	139: {Slug: "word-break", Title: "Word Break", Difficulty: DifficultyMedium},
	141: {Slug: "linked-list-cycle", Title: "Linked List Cycle", Difficulty: DifficultyEasy},
	142: {Slug: "linked-list-cycle-ii", Title: "Linked List Cycle II", Difficulty: DifficultyMedium},
	143: {Slug: "reorder-list", Title: "Reorder List", Difficulty: DifficultyMedium},
	144: {Slug: "binary-tree-preorder-traversal", Title: "Binary Tree Preorder Traversal", Difficulty: DifficultyEasy},
	146: {Slug: "lru-cache", Title: "LRU Cache", Difficulty: DifficultyMedium},
	148: {Slug: "sort-list", Title: "Sort List", Difficulty: DifficultyMedium},
	150: {Slug: "evaluate-reverse-polish-notation", Title: "Evaluate Reverse Polish Notation", Difficulty: DifficultyMedium},
	152: {Slug: "maximum-product-subarray", Title: "Maximum Product Subarray", Difficulty: DifficultyMedium},
	153: {Slug: "find-minimum-in-rotated-sorted-array", Title: "Find Minimum in Rotated Sorted Array", Difficulty: DifficultyMedium},
	155: {Slug: "min-stack", Title: "Min Stack", Difficulty: DifficultyMedium},
	160: {Slug: "intersection-of-two-linked-lists", Title: "Intersection of Two Linked Lists", Difficulty: DifficultyEasy},
	167: {Slug: "two-sum-ii-input-array-is-sorted", Title: "Two Sum II - Input Array Is Sorted", Difficulty: DifficultyMedium},
	169: {Slug: "majority-element", Title: "Majority Element", Difficulty: DifficultyEasy},
	171: {Slug: "excel-sheet-column-number", Title: "Excel Sheet Column Number", Difficulty: DifficultyEasy},
	190: {Slug: "reverse-bits", Title: "Reverse Bits", Difficulty: DifficultyEasy},
	191: {Slug: "number-of-1-bits", Title: "Number of 1 Bits", Difficulty: DifficultyEasy},
	198: {Slug: "house-robber", Title: "House Robber", Difficulty: DifficultyMedium},
	200: {Slug: "number-of-islands", Title: "Number of Islands", Difficulty: DifficultyMedium},
	202: {Slug: "happy-number", Title: "Happy Number", Difficulty: DifficultyEasy},
	206: {Slug: "reverse-linked-list", Title: "Reverse Linked List", Difficulty: DifficultyEasy},
	207: {Slug: "course-schedule", Title: "Course Schedule", Difficulty: DifficultyMedium},
	208: {Slug: "implement-trie-prefix-tree", Title: "Implement Trie (Prefix Tree)", Difficulty: DifficultyMedium},
	209: {Slug: "minimum-size-subarray-sum", Title: "Minimum Size Subarray Sum", Difficulty: DifficultyMedium},
	210: {Slug: "course-schedule-ii", Title: "Course Schedule II", Difficulty: DifficultyMedium},
	217: {Slug: "contains-duplicate", Title: "Contains Duplicate", Difficulty: DifficultyEasy},
	226: {Slug: "invert-binary-tree", Title: "Invert Binary Tree", Difficulty: DifficultyEasy},
	230: {Slug: "kth-smallest-element-in-a-bst", Title: "Kth Smallest Element in a BST", Difficulty: DifficultyMedium},
	234: {Slug: "palindrome-linked-list", Title: "Palindrome Linked List", Difficulty: DifficultyEasy},
	235: {Slug: "lowest-common-ancestor-of-a-binary-search-tree", Title: "Lowest Common Ancestor of a Binary Search Tree", Difficulty: DifficultyMedium},
	236: {Slug: "lowest-common-ancestor-of-a-binary-tree", Title: "Lowest Common Ancestor of a Binary Tree", Difficulty: DifficultyMedium},
	238: {Slug: "product-of-array-except-self", Title: "Product of Array Except Self", Difficulty: DifficultyMedium},
	239: {Slug: "sliding-window-maximum", Title: "Sliding Window Maximum", Difficulty: DifficultyHard},
	242: {Slug: "valid-anagram", Title: "Valid Anagram", Difficulty: DifficultyEasy},
	252: {Slug: "meeting-rooms", Title: "Meeting Rooms", Difficulty: DifficultyEasy, PaidOnly: true},
	253: {Slug: "meeting-rooms-ii", Title: "Meeting Rooms II", Difficulty: DifficultyMedium, PaidOnly: true},
	268: {Slug: "missing-number", Title: "Missing Number", Difficulty: DifficultyEasy},
	269: {Slug: "alien-dictionary", Title: "Alien Dictionary", Difficulty: DifficultyHard, PaidOnly: true},
	271: {Slug: "encode-and-decode-strings", Title: "Encode and Decode Strings", Difficulty: DifficultyMedium, PaidOnly: true},
	283: {Slug: "move-zeroes", Title: "Move Zeroes", Difficulty: DifficultyEasy},
	287: {Slug: "find-the-duplicate-number", Title: "Find the Duplicate Number", Difficulty: DifficultyMedium},
	300: {Slug: "longest-increasing-subsequence", Title: "Longest Increasing Subsequence", Difficulty: DifficultyMedium},
	322: {Slug: "coin-change", Title: "Coin Change", Difficulty: DifficultyMedium},
	347: {Slug: "top-k-frequent-elements", Title: "Top K Frequent Elements", Difficulty: DifficultyMedium},
	371: {Slug: "sum-of-two-integers", Title: "Sum of Two Integers", Difficulty: DifficultyMedium},
	383: {Slug: "ransom-note", Title: "Ransom Note", Difficulty: DifficultyEasy},
	387: {Slug: "first-unique-character-in-a-string", Title: "First Unique Character in a String", Difficulty: DifficultyEasy},
	392: {Slug: "is-subsequence", Title: "Is Subsequence", Difficulty: DifficultyEasy},
	417: {Slug: "pacific-atlantic-water-flow", Title: "Pacific Atlantic Water Flow", Difficulty: DifficultyMedium},
	424: {Slug: "longest-repeating-character-replacement", Title: "Longest Repeating Character Replacement", Difficulty: DifficultyMedium},
	435: {Slug: "non-overlapping-intervals", Title: "Non-overlapping Intervals", Difficulty: DifficultyMedium},
	448: {Slug: "find-all-numbers-disappeared-in-an-array", Title: "Find All Numbers Disappeared in an Array", Difficulty: DifficultyEasy},
	494: {Slug: "target-sum", Title: "Target Sum", Difficulty: DifficultyMedium},
	509: {Slug: "fibonacci-number", Title: "Fibonacci Number", Difficulty: DifficultyEasy},
	518: {Slug: "coin-change-ii", Title: "Coin Change II", Difficulty: DifficultyMedium},
	543: {Slug: "diameter-of-binary-tree", Title: "Diameter of Binary Tree", Difficulty: DifficultyEasy},
	572: {Slug: "subtree-of-another-tree", Title: "Subtree of Another Tree", Difficulty: DifficultyEasy},
	647: {Slug: "palindromic-substrings", Title: "Palindromic Substrings", Difficulty: DifficultyMedium},
	695: {Slug: "max-area-of-island", Title: "Max Area of Island", Difficulty: DifficultyMedium},
	704: {Slug: "binary-search", Title: "Binary Search", Difficulty: DifficultyEasy},
	707: {Slug: "design-linked-list", Title: "Design Linked List", Difficulty: DifficultyMedium},
	739: {Slug: "daily-temperatures", Title: "Daily Temperatures", Difficulty: DifficultyMedium},
	746: {Slug: "min-cost-climbing-stairs", Title: "Min Cost Climbing Stairs", Difficulty: DifficultyEasy},
	875: {Slug: "koko-eating-bananas", Title: "Koko Eating Bananas", Difficulty: DifficultyMedium},
	981: {Slug: "time-based-key-value-store", Title: "Time Based Key-Value Store", Difficulty: DifficultyMedium},
	1046: {Slug: "last-stone-weight", Title: "Last Stone Weight", Difficulty: DifficultyEasy},
	1143: {Slug: "longest-common-subsequence", Title: "Longest Common Subsequence", Difficulty: DifficultyMedium},
	1448: {Slug: "count-good-nodes-in-binary-tree", Title: "Count Good Nodes in Binary Tree", Difficulty: DifficultyMedium},
	1584: {Slug: "min-cost-to-connect-all-points", Title: "Min Cost to Connect All Points", Difficulty: DifficultyMedium},
}

// problemsBySlug is built once from problemCatalog.
var problemsBySlug = func() map[string]int64 {
	m := make(map[string]int64, len(problemCatalog))
	for id, p := range problemCatalog {
		m[p.Slug] = id
	}
	return m
}()

// FindProblem returns the catalog entry for a frontend id.
func FindProblem(id int64) (Problem, bool) {
	p, ok := problemCatalog[id]
	if !ok {
		return Problem{}, false
	}
	p.ID = id
	return p, true
}

// FindProblemBySlug returns the catalog entry whose slug matches exactly.
func FindProblemBySlug(slug string) (Problem, bool) {
	id, ok := problemsBySlug[slug]
	if !ok {
		return Problem{}, false
	}
	return FindProblem(id)
}

// ProblemCount is the number of catalog entries.
func ProblemCount() int {
	return len(problemCatalog)
}
