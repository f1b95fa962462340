// Package i18n resolves display labels. Catalogs are static; anything
// untranslated falls back to English, and an unknown key is returned
// verbatim so missing labels stay visible instead of vanishing.
package i18n

// Catalog resolves labels for one language.
type Catalog struct {
	lang string
}

// New creates a catalog for a language code ("en", "zh"). Unknown codes
// behave as English.
func New(lang string) *Catalog {
	return &Catalog{lang: lang}
}

// T translates a label key.
func (c *Catalog) T(key string) string {
	if c.lang != "" && c.lang != "en" {
		if translations, ok := catalogs[c.lang]; ok {
			if s, ok := translations[key]; ok {
				return s
			}
		}
	}
	if s, ok := catalogs["en"][key]; ok {
		return s
	}
	return key
}

var catalogs = map[string]map[string]string{
	"en": {
		"gpu_info":          "GPU Info",
		"advanced_gpu_info": "Advanced GPU Info",
		"gpu_name":          "GPU Name",
		"gpu_vendor":        "GPU Vendor",
		"driver_version":    "Driver Version",
		"memory_total":      "Total Memory",
		"memory_used":       "Used Memory",
		"memory_free":       "Free Memory",
		"utilization":       "Utilization",
		"temperature":       "Temperature",
		"power_usage":       "Power Usage",
		"clock_core":        "Core Clock",
		"clock_memory":      "Memory Clock",

		"system_memory":         "System Memory",
		"total_physical_memory": "Total Physical Memory",
		"used_physical_memory":  "Used Physical Memory",
		"free_physical_memory":  "Free Physical Memory",
		"memory_usage":          "Memory Usage",
		"swap_total":            "Total Swap",
		"swap_used":             "Used Swap",

		"each_process":  "Processes",
		"pid":           "PID",
		"process_name":  "Name",
		"working_set":   "Working Set",
		"virtual_size":  "Virtual Size",
		"hardware_info": "Hardware Info",
		"hostname":      "Hostname",
		"os":            "Operating System",
		"platform":      "Platform",
		"cpu_brand":     "CPU Brand",
		"cpu_cores":     "Logical Cores",
		"architecture":  "Architecture",

		"no_gpu_backend": "no GPU monitoring backend could be initialized",
		"no_gpu":         "no GPU information available",
	},
	"zh": {
		"gpu_info":          "GPU信息",
		"advanced_gpu_info": "高级GPU信息",
		"gpu_name":          "GPU名称",
		"gpu_vendor":        "GPU厂商",
		"driver_version":    "驱动版本",
		"memory_total":      "总显存",
		"memory_used":       "已用显存",
		"memory_free":       "可用显存",
		"utilization":       "使用率",
		"temperature":       "温度",
		"power_usage":       "功耗",
		"clock_core":        "核心频率",
		"clock_memory":      "显存频率",

		"system_memory":         "系统内存",
		"total_physical_memory": "总物理内存",
		"used_physical_memory":  "已用物理内存",
		"free_physical_memory":  "可用物理内存",
		"memory_usage":          "内存使用率",
		"swap_total":            "总交换空间",
		"swap_used":             "已用交换空间",

		"each_process":  "每个进程",
		"pid":           "进程ID",
		"process_name":  "进程名称",
		"working_set":   "工作集",
		"virtual_size":  "虚拟内存",
		"hardware_info": "硬件信息",
		"hostname":      "主机名",
		"os":            "操作系统",
		"platform":      "平台",
		"cpu_brand":     "CPU品牌",
		"cpu_cores":     "逻辑核心数",
		"architecture":  "CPU架构",

		"no_gpu_backend": "无法初始化GPU监控",
		"no_gpu":         "无法获取GPU信息",
	},
}
