package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"mclauncher/internal/types"
)

// BuildCommand assembles the final process invocation from a resolved
// launch. Arguments stay as discrete tokens end to end; the classpath is
// the only joined string, using the target platform's list separator.
func BuildCommand(desc types.Descriptor, resolved types.ResolvedLaunch, ctx types.RuntimeContext, opts types.LaunchOptions, platform types.Platform) types.Command {
	args := make([]string, 0, 32+len(resolved.GameArgs))

	if !opts.UseSystemMemory && opts.MemoryMB > 0 {
		args = append(args,
			fmt.Sprintf("-Xmx%dM", opts.MemoryMB),
			fmt.Sprintf("-Xms%dM", opts.MemoryMB),
		)
	}

	args = append(args, jvmFlags(ctx, platform)...)
	args = append(args,
		"-cp", strings.Join(resolved.Classpath, platform.PathListSeparator()),
		desc.MainClass,
	)
	args = append(args, resolved.GameArgs...)

	return types.Command{
		Executable: opts.JavaPath,
		Args:       args,
	}
}

// jvmFlags is the fixed JVM property and GC flag block applied to every
// launch: codebase hardening, the log4j lookup mitigation, G1 tuning,
// and the native library extraction directories.
func jvmFlags(ctx types.RuntimeContext, platform types.Platform) []string {
	versionDir := filepath.Join(ctx.RootDir, "versions", ctx.VersionName)
	nativesDir := filepath.Join(versionDir, fmt.Sprintf("natives-%s-%s", platform.Name, platform.Arch))
	return []string{
		"-Dfile.encoding=UTF-8",
		"-Dsun.stdout.encoding=UTF-8",
		"-Dsun.stderr.encoding=UTF-8",
		"-Djava.rmi.server.useCodebaseOnly=true",
		"-Dcom.sun.jndi.rmi.object.trustURLCodebase=false",
		"-Dcom.sun.jndi.cosnaming.object.trustURLCodebase=false",
		"-Dlog4j2.formatMsgNoLookups=true",
		"-Dlog4j.configurationFile=" + filepath.Join(versionDir, "log4j2.xml"),
		"-Dminecraft.client.jar=" + filepath.Join(versionDir, ctx.VersionName+".jar"),
		"-XX:+UnlockExperimentalVMOptions",
		"-XX:+UseG1GC",
		"-XX:G1NewSizePercent=20",
		"-XX:G1ReservePercent=20",
		"-XX:MaxGCPauseMillis=50",
		"-XX:G1HeapRegionSize=32m",
		"-XX:-UseAdaptiveSizePolicy",
		"-XX:-OmitStackTraceInFastThrow",
		"-XX:-DontCompileHugeMethods",
		"-Dfml.ignoreInvalidMinecraftCertificates=true",
		"-Dfml.ignorePatchDiscrepancies=true",
		"-Djava.library.path=" + nativesDir,
		"-Djna.tmpdir=" + nativesDir,
		"-Dorg.lwjgl.system.SharedLibraryExtractPath=" + nativesDir,
		"-Dio.netty.native.workdir=" + nativesDir,
		"-Dminecraft.launcher.brand=" + types.LauncherBrand,
		"-Dminecraft.launcher.version=" + types.LauncherVersion,
	}
}
