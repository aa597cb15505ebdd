// Package xenv 提供进程环境的只读访问：当前工作目录和环境变量。
//
// 与 os.Getenv 不同，本包在每个平台上都直接走平台 API
// （unix 上经 golang.org/x/sys/unix，Windows 上经 golang.org/x/sys/windows），
// 并对无效的变量名给出确定的结果：空名称、包含 '=' 或空字节的名称一律视为未设置。
//
// 本包不提供修改环境的能力。
//
//	wd, err := xenv.WorkingDirectory()
//	if err != nil {
//	    return err
//	}
//	home, ok := xenv.LookupEnv("HOME")
package xenv
