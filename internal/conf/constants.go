package conf

// DefaultTableSize - Number of buckets used when no validated row count is available
const DefaultTableSize int64 = 179

// FieldDelimiter - Delimiter between fields in a course file row
const FieldDelimiter byte = ','

// RowDelimiter - Delimiter between rows in a course file
const RowDelimiter byte = '\n'

// MinFields - Minimum number of non-empty fields in a row, course number and title
const MinFields int = 2

// NumberField - Position of the course number in a row
const NumberField int = 0

// TitleField - Position of the course title in a row
const TitleField int = 1

// HashBase - Base of the polynomial course number hash
const HashBase uint64 = 31

// DefaultCourseFile - Course file used when no path is given
const DefaultCourseFile string = "./CS 300 ABCU_Advising_Program_Input.csv"
