package naming

// VariantNameFormat joins the base item name and its variant name.
// Format: "<base>: <variant>"
const VariantNameFormat = "%s: %s"

// WordSeparator joins title-cased words
const WordSeparator = " "
