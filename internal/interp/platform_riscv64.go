package interp

// Platform is passed to the loader if the kernel does not provide AT_PLATFORM.
const Platform = "riscv64"
