package perturbations

import (
	m "strata.dev/pkg/strata/internal/model"
)

// implicitTypes lists the types each implicitly imported package provides.
var implicitTypes = map[string][]string{
	"java.lang": {
		"AbstractMethodError", "Appendable", "ArithmeticException", "ArrayIndexOutOfBoundsException",
		"ArrayStoreException", "AssertionError", "AutoCloseable", "Boolean", "Byte", "CharSequence",
		"Character", "Class", "ClassCastException", "ClassLoader", "ClassNotFoundException",
		"CloneNotSupportedException", "Cloneable", "Comparable", "Deprecated", "Double", "Enum",
		"Error", "Exception", "Float", "FunctionalInterface", "IllegalAccessException",
		"IllegalArgumentException", "IllegalMonitorStateException", "IllegalStateException",
		"IndexOutOfBoundsException", "InstantiationException", "Integer", "InterruptedException",
		"Iterable", "LinkageError", "Long", "Math", "NegativeArraySizeException",
		"NoSuchFieldException", "NoSuchMethodException", "NullPointerException", "Number",
		"NumberFormatException", "Object", "OutOfMemoryError", "Override", "Process",
		"ProcessBuilder", "Readable", "Record", "ReflectiveOperationException", "Runnable",
		"Runtime", "RuntimeException", "SafeVarargs", "SecurityException", "Short",
		"StackOverflowError", "StackTraceElement", "StrictMath", "String", "StringBuffer",
		"StringBuilder", "StringIndexOutOfBoundsException", "SuppressWarnings", "System", "Thread",
		"ThreadLocal", "Throwable", "TypeNotPresentException", "UnsupportedOperationException",
		"VirtualMachineError", "Void",
	},
	"kotlin": {
		"Any", "Array", "Boolean", "BooleanArray", "Byte", "ByteArray", "Char", "CharArray",
		"CharSequence", "Comparable", "Double", "DoubleArray", "Enum", "Float", "FloatArray",
		"Int", "IntArray", "Long", "LongArray", "Nothing", "Number", "Pair", "Short",
		"ShortArray", "String", "Throwable", "Triple", "Unit",
	},
}

// ImplicitTypes returns the short to qualified name table of the dialect's
// implicitly imported package. It is empty for dialects without one.
func ImplicitTypes(d m.Dialect) map[string]string {
	names := implicitTypes[d.ImplicitPackage]
	table := make(map[string]string, len(names))

	for _, name := range names {
		table[name] = d.ImplicitPackage + "." + name
	}

	return table
}

// ImplicitPackages returns the root segments of every implicit package.
func ImplicitPackages() []string {
	roots := make([]string, 0, len(implicitTypes))
	for pkg := range implicitTypes {
		roots = append(roots, rootSegment(pkg))
	}

	return roots
}

// qualifyTable merges the implicit types of the dialect with the configured
// table; configured entries win.
func qualifyTable(in Input) map[string]string {
	table := ImplicitTypes(in.Dialect)
	for short, qualified := range in.Symbols.Qualify {
		table[short] = qualified
	}

	return table
}
