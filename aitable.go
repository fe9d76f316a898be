package aisyntax

// aiTable is the GS1 Application Identifier registry: one entry per AI,
// flat and in ascending code order, never mutated after init. Entry
// grammars follow the GS1 General Specifications element string
// definitions (component character set, min and max length, extra
// linters such as the check-digit test).
var aiTable = []Entry{
	ai("00", noFNC1, "SSCC", n(18, 18, lintCSum)),
	ai("01", noFNC1, "GTIN", n(14, 14, lintCSum)),
	ai("02", noFNC1, "CONTENT", n(14, 14, lintCSum)),
	ai("10", reqFNC1, "BATCH/LOT", x(1, 20)),
	ai("11", noFNC1, "PROD DATE", n(6, 6)),
	ai("12", noFNC1, "DUE DATE", n(6, 6)),
	ai("13", noFNC1, "PACK DATE", n(6, 6)),
	ai("15", noFNC1, "BEST BEFORE or BEST BY", n(6, 6)),
	ai("16", noFNC1, "SELL BY", n(6, 6)),
	ai("17", noFNC1, "USE BY or EXPIRY", n(6, 6)),
	ai("20", noFNC1, "VARIANT", n(2, 2)),
	ai("21", reqFNC1, "SERIAL", x(1, 20)),
	ai("22", reqFNC1, "CPV", x(1, 20)),
	ai("235", reqFNC1, "TPX", x(1, 28)),
	ai("240", reqFNC1, "ADDITIONAL ID", x(1, 30)),
	ai("241", reqFNC1, "CUST. PART NO.", x(1, 30)),
	ai("242", reqFNC1, "MTO VARIANT", n(1, 6)),
	ai("243", reqFNC1, "PCN", x(1, 20)),
	ai("250", reqFNC1, "SECONDARY SERIAL", x(1, 30)),
	ai("251", reqFNC1, "REF. TO SOURCE", x(1, 30)),
	ai("253", reqFNC1, "GDTI", n(13, 13, lintCSum), x(0, 17)),
	ai("254", reqFNC1, "GLN EXTENSION COMPONENT", x(1, 20)),
	ai("255", reqFNC1, "GCN", n(13, 13, lintCSum), n(0, 12)),
	ai("30", reqFNC1, "VAR. COUNT", n(1, 8)),
	ai("3100", noFNC1, "NET WEIGHT (kg)", n(6, 6)),
	ai("3101", noFNC1, "NET WEIGHT (kg)", n(6, 6)),
	ai("3102", noFNC1, "NET WEIGHT (kg)", n(6, 6)),
	ai("3103", noFNC1, "NET WEIGHT (kg)", n(6, 6)),
	ai("3104", noFNC1, "NET WEIGHT (kg)", n(6, 6)),
	ai("3105", noFNC1, "NET WEIGHT (kg)", n(6, 6)),
	ai("3110", noFNC1, "LENGTH (m)", n(6, 6)),
	ai("3111", noFNC1, "LENGTH (m)", n(6, 6)),
	ai("3112", noFNC1, "LENGTH (m)", n(6, 6)),
	ai("3113", noFNC1, "LENGTH (m)", n(6, 6)),
	ai("3114", noFNC1, "LENGTH (m)", n(6, 6)),
	ai("3115", noFNC1, "LENGTH (m)", n(6, 6)),
	ai("3120", noFNC1, "WIDTH (m)", n(6, 6)),
	ai("3121", noFNC1, "WIDTH (m)", n(6, 6)),
	ai("3122", noFNC1, "WIDTH (m)", n(6, 6)),
	ai("3123", noFNC1, "WIDTH (m)", n(6, 6)),
	ai("3124", noFNC1, "WIDTH (m)", n(6, 6)),
	ai("3125", noFNC1, "WIDTH (m)", n(6, 6)),
	ai("3130", noFNC1, "HEIGHT (m)", n(6, 6)),
	ai("3131", noFNC1, "HEIGHT (m)", n(6, 6)),
	ai("3132", noFNC1, "HEIGHT (m)", n(6, 6)),
	ai("3133", noFNC1, "HEIGHT (m)", n(6, 6)),
	ai("3134", noFNC1, "HEIGHT (m)", n(6, 6)),
	ai("3135", noFNC1, "HEIGHT (m)", n(6, 6)),
	ai("3140", noFNC1, "AREA (m^2)", n(6, 6)),
	ai("3141", noFNC1, "AREA (m^2)", n(6, 6)),
	ai("3142", noFNC1, "AREA (m^2)", n(6, 6)),
	ai("3143", noFNC1, "AREA (m^2)", n(6, 6)),
	ai("3144", noFNC1, "AREA (m^2)", n(6, 6)),
	ai("3145", noFNC1, "AREA (m^2)", n(6, 6)),
	ai("3150", noFNC1, "NET VOLUME (l)", n(6, 6)),
	ai("3151", noFNC1, "NET VOLUME (l)", n(6, 6)),
	ai("3152", noFNC1, "NET VOLUME (l)", n(6, 6)),
	ai("3153", noFNC1, "NET VOLUME (l)", n(6, 6)),
	ai("3154", noFNC1, "NET VOLUME (l)", n(6, 6)),
	ai("3155", noFNC1, "NET VOLUME (l)", n(6, 6)),
	ai("3160", noFNC1, "NET VOLUME (m^3)", n(6, 6)),
	ai("3161", noFNC1, "NET VOLUME (m^3)", n(6, 6)),
	ai("3162", noFNC1, "NET VOLUME (m^3)", n(6, 6)),
	ai("3163", noFNC1, "NET VOLUME (m^3)", n(6, 6)),
	ai("3164", noFNC1, "NET VOLUME (m^3)", n(6, 6)),
	ai("3165", noFNC1, "NET VOLUME (m^3)", n(6, 6)),
	ai("3200", noFNC1, "NET WEIGHT (lb)", n(6, 6)),
	ai("3201", noFNC1, "NET WEIGHT (lb)", n(6, 6)),
	ai("3202", noFNC1, "NET WEIGHT (lb)", n(6, 6)),
	ai("3203", noFNC1, "NET WEIGHT (lb)", n(6, 6)),
	ai("3204", noFNC1, "NET WEIGHT (lb)", n(6, 6)),
	ai("3205", noFNC1, "NET WEIGHT (lb)", n(6, 6)),
	ai("3210", noFNC1, "LENGTH (i)", n(6, 6)),
	ai("3211", noFNC1, "LENGTH (i)", n(6, 6)),
	ai("3212", noFNC1, "LENGTH (i)", n(6, 6)),
	ai("3213", noFNC1, "LENGTH (i)", n(6, 6)),
	ai("3214", noFNC1, "LENGTH (i)", n(6, 6)),
	ai("3215", noFNC1, "LENGTH (i)", n(6, 6)),
	ai("3220", noFNC1, "LENGTH (f)", n(6, 6)),
	ai("3221", noFNC1, "LENGTH (f)", n(6, 6)),
	ai("3222", noFNC1, "LENGTH (f)", n(6, 6)),
	ai("3223", noFNC1, "LENGTH (f)", n(6, 6)),
	ai("3224", noFNC1, "LENGTH (f)", n(6, 6)),
	ai("3225", noFNC1, "LENGTH (f)", n(6, 6)),
	ai("3230", noFNC1, "LENGTH (y)", n(6, 6)),
	ai("3231", noFNC1, "LENGTH (y)", n(6, 6)),
	ai("3232", noFNC1, "LENGTH (y)", n(6, 6)),
	ai("3233", noFNC1, "LENGTH (y)", n(6, 6)),
	ai("3234", noFNC1, "LENGTH (y)", n(6, 6)),
	ai("3235", noFNC1, "LENGTH (y)", n(6, 6)),
	ai("3240", noFNC1, "WIDTH (i)", n(6, 6)),
	ai("3241", noFNC1, "WIDTH (i)", n(6, 6)),
	ai("3242", noFNC1, "WIDTH (i)", n(6, 6)),
	ai("3243", noFNC1, "WIDTH (i)", n(6, 6)),
	ai("3244", noFNC1, "WIDTH (i)", n(6, 6)),
	ai("3245", noFNC1, "WIDTH (i)", n(6, 6)),
	ai("3250", noFNC1, "WIDTH (f)", n(6, 6)),
	ai("3251", noFNC1, "WIDTH (f)", n(6, 6)),
	ai("3252", noFNC1, "WIDTH (f)", n(6, 6)),
	ai("3253", noFNC1, "WIDTH (f)", n(6, 6)),
	ai("3254", noFNC1, "WIDTH (f)", n(6, 6)),
	ai("3255", noFNC1, "WIDTH (f)", n(6, 6)),
	ai("3260", noFNC1, "WIDTH (y)", n(6, 6)),
	ai("3261", noFNC1, "WIDTH (y)", n(6, 6)),
	ai("3262", noFNC1, "WIDTH (y)", n(6, 6)),
	ai("3263", noFNC1, "WIDTH (y)", n(6, 6)),
	ai("3264", noFNC1, "WIDTH (y)", n(6, 6)),
	ai("3265", noFNC1, "WIDTH (y)", n(6, 6)),
	ai("3270", noFNC1, "HEIGHT (i)", n(6, 6)),
	ai("3271", noFNC1, "HEIGHT (i)", n(6, 6)),
	ai("3272", noFNC1, "HEIGHT (i)", n(6, 6)),
	ai("3273", noFNC1, "HEIGHT (i)", n(6, 6)),
	ai("3274", noFNC1, "HEIGHT (i)", n(6, 6)),
	ai("3275", noFNC1, "HEIGHT (i)", n(6, 6)),
	ai("3280", noFNC1, "HEIGHT (f)", n(6, 6)),
	ai("3281", noFNC1, "HEIGHT (f)", n(6, 6)),
	ai("3282", noFNC1, "HEIGHT (f)", n(6, 6)),
	ai("3283", noFNC1, "HEIGHT (f)", n(6, 6)),
	ai("3284", noFNC1, "HEIGHT (f)", n(6, 6)),
	ai("3285", noFNC1, "HEIGHT (f)", n(6, 6)),
	ai("3290", noFNC1, "HEIGHT (y)", n(6, 6)),
	ai("3291", noFNC1, "HEIGHT (y)", n(6, 6)),
	ai("3292", noFNC1, "HEIGHT (y)", n(6, 6)),
	ai("3293", noFNC1, "HEIGHT (y)", n(6, 6)),
	ai("3294", noFNC1, "HEIGHT (y)", n(6, 6)),
	ai("3295", noFNC1, "HEIGHT (y)", n(6, 6)),
	ai("3300", noFNC1, "GROSS WEIGHT (kg)", n(6, 6)),
	ai("3301", noFNC1, "GROSS WEIGHT (kg)", n(6, 6)),
	ai("3302", noFNC1, "GROSS WEIGHT (kg)", n(6, 6)),
	ai("3303", noFNC1, "GROSS WEIGHT (kg)", n(6, 6)),
	ai("3304", noFNC1, "GROSS WEIGHT (kg)", n(6, 6)),
	ai("3305", noFNC1, "GROSS WEIGHT (kg)", n(6, 6)),
	ai("3310", noFNC1, "LENGTH (m), log", n(6, 6)),
	ai("3311", noFNC1, "LENGTH (m), log", n(6, 6)),
	ai("3312", noFNC1, "LENGTH (m), log", n(6, 6)),
	ai("3313", noFNC1, "LENGTH (m), log", n(6, 6)),
	ai("3314", noFNC1, "LENGTH (m), log", n(6, 6)),
	ai("3315", noFNC1, "LENGTH (m), log", n(6, 6)),
	ai("3320", noFNC1, "WIDTH (m), log", n(6, 6)),
	ai("3321", noFNC1, "WIDTH (m), log", n(6, 6)),
	ai("3322", noFNC1, "WIDTH (m), log", n(6, 6)),
	ai("3323", noFNC1, "WIDTH (m), log", n(6, 6)),
	ai("3324", noFNC1, "WIDTH (m), log", n(6, 6)),
	ai("3325", noFNC1, "WIDTH (m), log", n(6, 6)),
	ai("3330", noFNC1, "HEIGHT (m), log", n(6, 6)),
	ai("3331", noFNC1, "HEIGHT (m), log", n(6, 6)),
	ai("3332", noFNC1, "HEIGHT (m), log", n(6, 6)),
	ai("3333", noFNC1, "HEIGHT (m), log", n(6, 6)),
	ai("3334", noFNC1, "HEIGHT (m), log", n(6, 6)),
	ai("3335", noFNC1, "HEIGHT (m), log", n(6, 6)),
	ai("3340", noFNC1, "AREA (m^2), log", n(6, 6)),
	ai("3341", noFNC1, "AREA (m^2), log", n(6, 6)),
	ai("3342", noFNC1, "AREA (m^2), log", n(6, 6)),
	ai("3343", noFNC1, "AREA (m^2), log", n(6, 6)),
	ai("3344", noFNC1, "AREA (m^2), log", n(6, 6)),
	ai("3345", noFNC1, "AREA (m^2), log", n(6, 6)),
	ai("3350", noFNC1, "VOLUME (l), log", n(6, 6)),
	ai("3351", noFNC1, "VOLUME (l), log", n(6, 6)),
	ai("3352", noFNC1, "VOLUME (l), log", n(6, 6)),
	ai("3353", noFNC1, "VOLUME (l), log", n(6, 6)),
	ai("3354", noFNC1, "VOLUME (l), log", n(6, 6)),
	ai("3355", noFNC1, "VOLUME (l), log", n(6, 6)),
	ai("3360", noFNC1, "VOLUME (m^3), log", n(6, 6)),
	ai("3361", noFNC1, "VOLUME (m^3), log", n(6, 6)),
	ai("3362", noFNC1, "VOLUME (m^3), log", n(6, 6)),
	ai("3363", noFNC1, "VOLUME (m^3), log", n(6, 6)),
	ai("3364", noFNC1, "VOLUME (m^3), log", n(6, 6)),
	ai("3365", noFNC1, "VOLUME (m^3), log", n(6, 6)),
	ai("3370", noFNC1, "KG PER m^2", n(6, 6)),
	ai("3371", noFNC1, "KG PER m^2", n(6, 6)),
	ai("3372", noFNC1, "KG PER m^2", n(6, 6)),
	ai("3373", noFNC1, "KG PER m^2", n(6, 6)),
	ai("3374", noFNC1, "KG PER m^2", n(6, 6)),
	ai("3375", noFNC1, "KG PER m^2", n(6, 6)),
	ai("3400", noFNC1, "GROSS WEIGHT (lb)", n(6, 6)),
	ai("3401", noFNC1, "GROSS WEIGHT (lb)", n(6, 6)),
	ai("3402", noFNC1, "GROSS WEIGHT (lb)", n(6, 6)),
	ai("3403", noFNC1, "GROSS WEIGHT (lb)", n(6, 6)),
	ai("3404", noFNC1, "GROSS WEIGHT (lb)", n(6, 6)),
	ai("3405", noFNC1, "GROSS WEIGHT (lb)", n(6, 6)),
	ai("3410", noFNC1, "LENGTH (i), log", n(6, 6)),
	ai("3411", noFNC1, "LENGTH (i), log", n(6, 6)),
	ai("3412", noFNC1, "LENGTH (i), log", n(6, 6)),
	ai("3413", noFNC1, "LENGTH (i), log", n(6, 6)),
	ai("3414", noFNC1, "LENGTH (i), log", n(6, 6)),
	ai("3415", noFNC1, "LENGTH (i), log", n(6, 6)),
	ai("3420", noFNC1, "LENGTH (f), log", n(6, 6)),
	ai("3421", noFNC1, "LENGTH (f), log", n(6, 6)),
	ai("3422", noFNC1, "LENGTH (f), log", n(6, 6)),
	ai("3423", noFNC1, "LENGTH (f), log", n(6, 6)),
	ai("3424", noFNC1, "LENGTH (f), log", n(6, 6)),
	ai("3425", noFNC1, "LENGTH (f), log", n(6, 6)),
	ai("3430", noFNC1, "LENGTH (y), log", n(6, 6)),
	ai("3431", noFNC1, "LENGTH (y), log", n(6, 6)),
	ai("3432", noFNC1, "LENGTH (y), log", n(6, 6)),
	ai("3433", noFNC1, "LENGTH (y), log", n(6, 6)),
	ai("3434", noFNC1, "LENGTH (y), log", n(6, 6)),
	ai("3435", noFNC1, "LENGTH (y), log", n(6, 6)),
	ai("3440", noFNC1, "WIDTH (i), log", n(6, 6)),
	ai("3441", noFNC1, "WIDTH (i), log", n(6, 6)),
	ai("3442", noFNC1, "WIDTH (i), log", n(6, 6)),
	ai("3443", noFNC1, "WIDTH (i), log", n(6, 6)),
	ai("3444", noFNC1, "WIDTH (i), log", n(6, 6)),
	ai("3445", noFNC1, "WIDTH (i), log", n(6, 6)),
	ai("3450", noFNC1, "WIDTH (f), log", n(6, 6)),
	ai("3451", noFNC1, "WIDTH (f), log", n(6, 6)),
	ai("3452", noFNC1, "WIDTH (f), log", n(6, 6)),
	ai("3453", noFNC1, "WIDTH (f), log", n(6, 6)),
	ai("3454", noFNC1, "WIDTH (f), log", n(6, 6)),
	ai("3455", noFNC1, "WIDTH (f), log", n(6, 6)),
	ai("3460", noFNC1, "WIDTH (y), log", n(6, 6)),
	ai("3461", noFNC1, "WIDTH (y), log", n(6, 6)),
	ai("3462", noFNC1, "WIDTH (y), log", n(6, 6)),
	ai("3463", noFNC1, "WIDTH (y), log", n(6, 6)),
	ai("3464", noFNC1, "WIDTH (y), log", n(6, 6)),
	ai("3465", noFNC1, "WIDTH (y), log", n(6, 6)),
	ai("3470", noFNC1, "HEIGHT (i), log", n(6, 6)),
	ai("3471", noFNC1, "HEIGHT (i), log", n(6, 6)),
	ai("3472", noFNC1, "HEIGHT (i), log", n(6, 6)),
	ai("3473", noFNC1, "HEIGHT (i), log", n(6, 6)),
	ai("3474", noFNC1, "HEIGHT (i), log", n(6, 6)),
	ai("3475", noFNC1, "HEIGHT (i), log", n(6, 6)),
	ai("3480", noFNC1, "HEIGHT (f), log", n(6, 6)),
	ai("3481", noFNC1, "HEIGHT (f), log", n(6, 6)),
	ai("3482", noFNC1, "HEIGHT (f), log", n(6, 6)),
	ai("3483", noFNC1, "HEIGHT (f), log", n(6, 6)),
	ai("3484", noFNC1, "HEIGHT (f), log", n(6, 6)),
	ai("3485", noFNC1, "HEIGHT (f), log", n(6, 6)),
	ai("3490", noFNC1, "HEIGHT (y), log", n(6, 6)),
	ai("3491", noFNC1, "HEIGHT (y), log", n(6, 6)),
	ai("3492", noFNC1, "HEIGHT (y), log", n(6, 6)),
	ai("3493", noFNC1, "HEIGHT (y), log", n(6, 6)),
	ai("3494", noFNC1, "HEIGHT (y), log", n(6, 6)),
	ai("3495", noFNC1, "HEIGHT (y), log", n(6, 6)),
	ai("3500", noFNC1, "AREA (i^2)", n(6, 6)),
	ai("3501", noFNC1, "AREA (i^2)", n(6, 6)),
	ai("3502", noFNC1, "AREA (i^2)", n(6, 6)),
	ai("3503", noFNC1, "AREA (i^2)", n(6, 6)),
	ai("3504", noFNC1, "AREA (i^2)", n(6, 6)),
	ai("3505", noFNC1, "AREA (i^2)", n(6, 6)),
	ai("3510", noFNC1, "AREA (f^2)", n(6, 6)),
	ai("3511", noFNC1, "AREA (f^2)", n(6, 6)),
	ai("3512", noFNC1, "AREA (f^2)", n(6, 6)),
	ai("3513", noFNC1, "AREA (f^2)", n(6, 6)),
	ai("3514", noFNC1, "AREA (f^2)", n(6, 6)),
	ai("3515", noFNC1, "AREA (f^2)", n(6, 6)),
	ai("3520", noFNC1, "AREA (y^2)", n(6, 6)),
	ai("3521", noFNC1, "AREA (y^2)", n(6, 6)),
	ai("3522", noFNC1, "AREA (y^2)", n(6, 6)),
	ai("3523", noFNC1, "AREA (y^2)", n(6, 6)),
	ai("3524", noFNC1, "AREA (y^2)", n(6, 6)),
	ai("3525", noFNC1, "AREA (y^2)", n(6, 6)),
	ai("3530", noFNC1, "AREA (i^2), log", n(6, 6)),
	ai("3531", noFNC1, "AREA (i^2), log", n(6, 6)),
	ai("3532", noFNC1, "AREA (i^2), log", n(6, 6)),
	ai("3533", noFNC1, "AREA (i^2), log", n(6, 6)),
	ai("3534", noFNC1, "AREA (i^2), log", n(6, 6)),
	ai("3535", noFNC1, "AREA (i^2), log", n(6, 6)),
	ai("3540", noFNC1, "AREA (f^2), log", n(6, 6)),
	ai("3541", noFNC1, "AREA (f^2), log", n(6, 6)),
	ai("3542", noFNC1, "AREA (f^2), log", n(6, 6)),
	ai("3543", noFNC1, "AREA (f^2), log", n(6, 6)),
	ai("3544", noFNC1, "AREA (f^2), log", n(6, 6)),
	ai("3545", noFNC1, "AREA (f^2), log", n(6, 6)),
	ai("3550", noFNC1, "AREA (y^2), log", n(6, 6)),
	ai("3551", noFNC1, "AREA (y^2), log", n(6, 6)),
	ai("3552", noFNC1, "AREA (y^2), log", n(6, 6)),
	ai("3553", noFNC1, "AREA (y^2), log", n(6, 6)),
	ai("3554", noFNC1, "AREA (y^2), log", n(6, 6)),
	ai("3555", noFNC1, "AREA (y^2), log", n(6, 6)),
	ai("3560", noFNC1, "NET WEIGHT (t)", n(6, 6)),
	ai("3561", noFNC1, "NET WEIGHT (t)", n(6, 6)),
	ai("3562", noFNC1, "NET WEIGHT (t)", n(6, 6)),
	ai("3563", noFNC1, "NET WEIGHT (t)", n(6, 6)),
	ai("3564", noFNC1, "NET WEIGHT (t)", n(6, 6)),
	ai("3565", noFNC1, "NET WEIGHT (t)", n(6, 6)),
	ai("3570", noFNC1, "NET VOLUME (oz)", n(6, 6)),
	ai("3571", noFNC1, "NET VOLUME (oz)", n(6, 6)),
	ai("3572", noFNC1, "NET VOLUME (oz)", n(6, 6)),
	ai("3573", noFNC1, "NET VOLUME (oz)", n(6, 6)),
	ai("3574", noFNC1, "NET VOLUME (oz)", n(6, 6)),
	ai("3575", noFNC1, "NET VOLUME (oz)", n(6, 6)),
	ai("3600", noFNC1, "NET VOLUME (q)", n(6, 6)),
	ai("3601", noFNC1, "NET VOLUME (q)", n(6, 6)),
	ai("3602", noFNC1, "NET VOLUME (q)", n(6, 6)),
	ai("3603", noFNC1, "NET VOLUME (q)", n(6, 6)),
	ai("3604", noFNC1, "NET VOLUME (q)", n(6, 6)),
	ai("3605", noFNC1, "NET VOLUME (q)", n(6, 6)),
	ai("3610", noFNC1, "NET VOLUME (g)", n(6, 6)),
	ai("3611", noFNC1, "NET VOLUME (g)", n(6, 6)),
	ai("3612", noFNC1, "NET VOLUME (g)", n(6, 6)),
	ai("3613", noFNC1, "NET VOLUME (g)", n(6, 6)),
	ai("3614", noFNC1, "NET VOLUME (g)", n(6, 6)),
	ai("3615", noFNC1, "NET VOLUME (g)", n(6, 6)),
	ai("3620", noFNC1, "VOLUME (q), log", n(6, 6)),
	ai("3621", noFNC1, "VOLUME (q), log", n(6, 6)),
	ai("3622", noFNC1, "VOLUME (q), log", n(6, 6)),
	ai("3623", noFNC1, "VOLUME (q), log", n(6, 6)),
	ai("3624", noFNC1, "VOLUME (q), log", n(6, 6)),
	ai("3625", noFNC1, "VOLUME (q), log", n(6, 6)),
	ai("3630", noFNC1, "VOLUME (g), log", n(6, 6)),
	ai("3631", noFNC1, "VOLUME (g), log", n(6, 6)),
	ai("3632", noFNC1, "VOLUME (g), log", n(6, 6)),
	ai("3633", noFNC1, "VOLUME (g), log", n(6, 6)),
	ai("3634", noFNC1, "VOLUME (g), log", n(6, 6)),
	ai("3635", noFNC1, "VOLUME (g), log", n(6, 6)),
	ai("3640", noFNC1, "VOLUME (i^3)", n(6, 6)),
	ai("3641", noFNC1, "VOLUME (i^3)", n(6, 6)),
	ai("3642", noFNC1, "VOLUME (i^3)", n(6, 6)),
	ai("3643", noFNC1, "VOLUME (i^3)", n(6, 6)),
	ai("3644", noFNC1, "VOLUME (i^3)", n(6, 6)),
	ai("3645", noFNC1, "VOLUME (i^3)", n(6, 6)),
	ai("3650", noFNC1, "VOLUME (f^3)", n(6, 6)),
	ai("3651", noFNC1, "VOLUME (f^3)", n(6, 6)),
	ai("3652", noFNC1, "VOLUME (f^3)", n(6, 6)),
	ai("3653", noFNC1, "VOLUME (f^3)", n(6, 6)),
	ai("3654", noFNC1, "VOLUME (f^3)", n(6, 6)),
	ai("3655", noFNC1, "VOLUME (f^3)", n(6, 6)),
	ai("3660", noFNC1, "VOLUME (y^3)", n(6, 6)),
	ai("3661", noFNC1, "VOLUME (y^3)", n(6, 6)),
	ai("3662", noFNC1, "VOLUME (y^3)", n(6, 6)),
	ai("3663", noFNC1, "VOLUME (y^3)", n(6, 6)),
	ai("3664", noFNC1, "VOLUME (y^3)", n(6, 6)),
	ai("3665", noFNC1, "VOLUME (y^3)", n(6, 6)),
	ai("3670", noFNC1, "VOLUME (i^3), log", n(6, 6)),
	ai("3671", noFNC1, "VOLUME (i^3), log", n(6, 6)),
	ai("3672", noFNC1, "VOLUME (i^3), log", n(6, 6)),
	ai("3673", noFNC1, "VOLUME (i^3), log", n(6, 6)),
	ai("3674", noFNC1, "VOLUME (i^3), log", n(6, 6)),
	ai("3675", noFNC1, "VOLUME (i^3), log", n(6, 6)),
	ai("3680", noFNC1, "VOLUME (f^3), log", n(6, 6)),
	ai("3681", noFNC1, "VOLUME (f^3), log", n(6, 6)),
	ai("3682", noFNC1, "VOLUME (f^3), log", n(6, 6)),
	ai("3683", noFNC1, "VOLUME (f^3), log", n(6, 6)),
	ai("3684", noFNC1, "VOLUME (f^3), log", n(6, 6)),
	ai("3685", noFNC1, "VOLUME (f^3), log", n(6, 6)),
	ai("3690", noFNC1, "VOLUME (y^3), log", n(6, 6)),
	ai("3691", noFNC1, "VOLUME (y^3), log", n(6, 6)),
	ai("3692", noFNC1, "VOLUME (y^3), log", n(6, 6)),
	ai("3693", noFNC1, "VOLUME (y^3), log", n(6, 6)),
	ai("3694", noFNC1, "VOLUME (y^3), log", n(6, 6)),
	ai("3695", noFNC1, "VOLUME (y^3), log", n(6, 6)),
	ai("37", reqFNC1, "COUNT", n(1, 8)),
	ai("3900", reqFNC1, "AMOUNT", n(1, 15)),
	ai("3901", reqFNC1, "AMOUNT", n(1, 15)),
	ai("3902", reqFNC1, "AMOUNT", n(1, 15)),
	ai("3903", reqFNC1, "AMOUNT", n(1, 15)),
	ai("3904", reqFNC1, "AMOUNT", n(1, 15)),
	ai("3905", reqFNC1, "AMOUNT", n(1, 15)),
	ai("3906", reqFNC1, "AMOUNT", n(1, 15)),
	ai("3907", reqFNC1, "AMOUNT", n(1, 15)),
	ai("3908", reqFNC1, "AMOUNT", n(1, 15)),
	ai("3909", reqFNC1, "AMOUNT", n(1, 15)),
	ai("3910", reqFNC1, "AMOUNT", n(3, 3), n(1, 15)),
	ai("3911", reqFNC1, "AMOUNT", n(3, 3), n(1, 15)),
	ai("3912", reqFNC1, "AMOUNT", n(3, 3), n(1, 15)),
	ai("3913", reqFNC1, "AMOUNT", n(3, 3), n(1, 15)),
	ai("3914", reqFNC1, "AMOUNT", n(3, 3), n(1, 15)),
	ai("3915", reqFNC1, "AMOUNT", n(3, 3), n(1, 15)),
	ai("3916", reqFNC1, "AMOUNT", n(3, 3), n(1, 15)),
	ai("3917", reqFNC1, "AMOUNT", n(3, 3), n(1, 15)),
	ai("3918", reqFNC1, "AMOUNT", n(3, 3), n(1, 15)),
	ai("3919", reqFNC1, "AMOUNT", n(3, 3), n(1, 15)),
	ai("3920", reqFNC1, "PRICE", n(1, 15)),
	ai("3921", reqFNC1, "PRICE", n(1, 15)),
	ai("3922", reqFNC1, "PRICE", n(1, 15)),
	ai("3923", reqFNC1, "PRICE", n(1, 15)),
	ai("3924", reqFNC1, "PRICE", n(1, 15)),
	ai("3925", reqFNC1, "PRICE", n(1, 15)),
	ai("3926", reqFNC1, "PRICE", n(1, 15)),
	ai("3927", reqFNC1, "PRICE", n(1, 15)),
	ai("3928", reqFNC1, "PRICE", n(1, 15)),
	ai("3929", reqFNC1, "PRICE", n(1, 15)),
	ai("3930", reqFNC1, "PRICE", n(3, 3), n(1, 15)),
	ai("3931", reqFNC1, "PRICE", n(3, 3), n(1, 15)),
	ai("3932", reqFNC1, "PRICE", n(3, 3), n(1, 15)),
	ai("3933", reqFNC1, "PRICE", n(3, 3), n(1, 15)),
	ai("3934", reqFNC1, "PRICE", n(3, 3), n(1, 15)),
	ai("3935", reqFNC1, "PRICE", n(3, 3), n(1, 15)),
	ai("3936", reqFNC1, "PRICE", n(3, 3), n(1, 15)),
	ai("3937", reqFNC1, "PRICE", n(3, 3), n(1, 15)),
	ai("3938", reqFNC1, "PRICE", n(3, 3), n(1, 15)),
	ai("3939", reqFNC1, "PRICE", n(3, 3), n(1, 15)),
	ai("3940", reqFNC1, "PRCNT OFF", n(4, 4)),
	ai("3941", reqFNC1, "PRCNT OFF", n(4, 4)),
	ai("3942", reqFNC1, "PRCNT OFF", n(4, 4)),
	ai("3943", reqFNC1, "PRCNT OFF", n(4, 4)),
	ai("3950", reqFNC1, "PRICE/UoM", n(6, 6)),
	ai("3951", reqFNC1, "PRICE/UoM", n(6, 6)),
	ai("3952", reqFNC1, "PRICE/UoM", n(6, 6)),
	ai("3953", reqFNC1, "PRICE/UoM", n(6, 6)),
	ai("3954", reqFNC1, "PRICE/UoM", n(6, 6)),
	ai("3955", reqFNC1, "PRICE/UoM", n(6, 6)),
	ai("400", reqFNC1, "ORDER NUMBER", x(1, 30)),
	ai("401", reqFNC1, "GINC", x(1, 30)),
	ai("402", reqFNC1, "GSIN", n(17, 17, lintCSum)),
	ai("403", reqFNC1, "ROUTE", x(1, 30)),
	ai("410", noFNC1, "SHIP TO LOC", n(13, 13, lintCSum)),
	ai("411", noFNC1, "BILL TO", n(13, 13, lintCSum)),
	ai("412", noFNC1, "PURCHASE FROM", n(13, 13, lintCSum)),
	ai("413", noFNC1, "SHIP FOR LOC", n(13, 13, lintCSum)),
	ai("414", noFNC1, "LOC NO.", n(13, 13, lintCSum)),
	ai("415", noFNC1, "PAY TO", n(13, 13, lintCSum)),
	ai("416", noFNC1, "PROD/SERV LOC", n(13, 13, lintCSum)),
	ai("417", noFNC1, "PARTY", n(13, 13, lintCSum)),
	ai("420", reqFNC1, "SHIP TO POST", x(1, 20)),
	ai("421", reqFNC1, "SHIP TO POST", n(3, 3), x(1, 9)),
	ai("422", reqFNC1, "ORIGIN", n(3, 3)),
	ai("423", reqFNC1, "COUNTRY - INITIAL PROCESS", n(3, 15)),
	ai("424", reqFNC1, "COUNTRY - PROCESS", n(3, 3)),
	ai("425", reqFNC1, "COUNTRY - DISASSEMBLY", n(3, 15)),
	ai("426", reqFNC1, "COUNTRY - FULL PROCESS", n(3, 3)),
	ai("427", reqFNC1, "ORIGIN SUBDIVISION", x(1, 3)),
	ai("4300", reqFNC1, "SHIP TO COMP", x(1, 35)),
	ai("4301", reqFNC1, "SHIP TO NAME", x(1, 35)),
	ai("4302", reqFNC1, "SHIP TO ADD1", x(1, 70)),
	ai("4303", reqFNC1, "SHIP TO ADD2", x(1, 70)),
	ai("4304", reqFNC1, "SHIP TO SUB", x(1, 70)),
	ai("4305", reqFNC1, "SHIP TO LOC", x(1, 70)),
	ai("4306", reqFNC1, "SHIP TO REG", x(1, 70)),
	ai("4307", reqFNC1, "SHIP TO COUNTRY", x(2, 2)),
	ai("4308", reqFNC1, "SHIP TO PHONE", x(1, 30)),
	ai("4310", reqFNC1, "RTN TO COMP", x(1, 35)),
	ai("4311", reqFNC1, "RTN TO NAME", x(1, 35)),
	ai("4312", reqFNC1, "RTN TO ADD1", x(1, 70)),
	ai("4313", reqFNC1, "RTN TO ADD2", x(1, 70)),
	ai("4314", reqFNC1, "RTN TO SUB", x(1, 70)),
	ai("4315", reqFNC1, "RTN TO LOC", x(1, 70)),
	ai("4316", reqFNC1, "RTN TO REG", x(1, 70)),
	ai("4317", reqFNC1, "RTN TO COUNTRY", x(2, 2)),
	ai("4318", reqFNC1, "RTN TO POST", x(1, 20)),
	ai("4319", reqFNC1, "RTN TO PHONE", x(1, 30)),
	ai("4320", reqFNC1, "SRV DESCRIPTION", x(1, 35)),
	ai("4321", reqFNC1, "DANGEROUS GOODS", n(1, 1)),
	ai("4322", reqFNC1, "AUTH LEAVE", n(1, 1)),
	ai("4323", reqFNC1, "SIG REQUIRED", n(1, 1)),
	ai("4324", reqFNC1, "NBEF DEL DT.", n(6, 6), n(4, 4)),
	ai("4325", reqFNC1, "NAFT DEL DT.", n(6, 6), n(4, 4)),
	ai("4326", reqFNC1, "REL DATE", n(6, 6)),
	ai("7001", reqFNC1, "NSN", n(13, 13)),
	ai("7002", reqFNC1, "MEAT CUT", x(1, 30)),
	ai("7003", reqFNC1, "EXPIRY TIME", n(6, 6), n(4, 4)),
	ai("7004", reqFNC1, "ACTIVE POTENCY", n(1, 4)),
	ai("7005", reqFNC1, "CATCH AREA", x(1, 12)),
	ai("7006", reqFNC1, "FIRST FREEZE DATE", n(6, 6)),
	ai("7007", reqFNC1, "HARVEST DATE", n(6, 6), n(0, 6)),
	ai("7008", reqFNC1, "AQUATIC SPECIES", x(1, 3)),
	ai("7009", reqFNC1, "FISHING GEAR TYPE", x(1, 10)),
	ai("7010", reqFNC1, "PROD METHOD", x(1, 2)),
	ai("7020", reqFNC1, "REFURB LOT", x(1, 20)),
	ai("7021", reqFNC1, "FUNC STAT", x(1, 20)),
	ai("7022", reqFNC1, "REV STAT", x(1, 20)),
	ai("7023", reqFNC1, "GIAI - ASSEMBLY", x(1, 30)),
	ai("7030", reqFNC1, "PROCESSOR # s", n(3, 3), x(1, 27)),
	ai("7031", reqFNC1, "PROCESSOR # s", n(3, 3), x(1, 27)),
	ai("7032", reqFNC1, "PROCESSOR # s", n(3, 3), x(1, 27)),
	ai("7033", reqFNC1, "PROCESSOR # s", n(3, 3), x(1, 27)),
	ai("7034", reqFNC1, "PROCESSOR # s", n(3, 3), x(1, 27)),
	ai("7035", reqFNC1, "PROCESSOR # s", n(3, 3), x(1, 27)),
	ai("7036", reqFNC1, "PROCESSOR # s", n(3, 3), x(1, 27)),
	ai("7037", reqFNC1, "PROCESSOR # s", n(3, 3), x(1, 27)),
	ai("7038", reqFNC1, "PROCESSOR # s", n(3, 3), x(1, 27)),
	ai("7039", reqFNC1, "PROCESSOR # s", n(3, 3), x(1, 27)),
	ai("7040", reqFNC1, "UIC+EXT", n(1, 1), x(1, 1), x(1, 1), x(1, 1)),
	ai("710", reqFNC1, "NHRN PZN", x(1, 20)),
	ai("711", reqFNC1, "NHRN CIP", x(1, 20)),
	ai("712", reqFNC1, "NHRN CN", x(1, 20)),
	ai("713", reqFNC1, "NHRN DRN", x(1, 20)),
	ai("714", reqFNC1, "NHRN AIM", x(1, 20)),
	ai("7230", reqFNC1, "CERT # s", x(2, 2), x(1, 28)),
	ai("7231", reqFNC1, "CERT # s", x(2, 2), x(1, 28)),
	ai("7232", reqFNC1, "CERT # s", x(2, 2), x(1, 28)),
	ai("7233", reqFNC1, "CERT # s", x(2, 2), x(1, 28)),
	ai("7234", reqFNC1, "CERT # s", x(2, 2), x(1, 28)),
	ai("7235", reqFNC1, "CERT # s", x(2, 2), x(1, 28)),
	ai("7236", reqFNC1, "CERT # s", x(2, 2), x(1, 28)),
	ai("7237", reqFNC1, "CERT # s", x(2, 2), x(1, 28)),
	ai("7238", reqFNC1, "CERT # s", x(2, 2), x(1, 28)),
	ai("7239", reqFNC1, "CERT # s", x(2, 2), x(1, 28)),
	ai("7240", reqFNC1, "PROTOCOL", x(1, 20)),
	ai("8001", reqFNC1, "DIMENSIONS", n(4, 4), n(5, 5), n(3, 3), n(1, 1), n(1, 1)),
	ai("8002", reqFNC1, "CMT NO.", x(1, 20)),
	ai("8003", reqFNC1, "GRAI", n(1, 1), n(13, 13, lintCSum), x(0, 16)),
	ai("8004", reqFNC1, "GIAI", x(1, 30)),
	ai("8005", reqFNC1, "PRICE PER UNIT", n(6, 6)),
	ai("8006", reqFNC1, "ITIP", n(14, 14, lintCSum), n(4, 4)),
	ai("8007", reqFNC1, "IBAN", x(1, 34)),
	ai("8008", reqFNC1, "PROD TIME", n(8, 8), n(0, 4)),
	ai("8009", reqFNC1, "OPTSEN", x(1, 50)),
	ai("8010", reqFNC1, "CPID", c(1, 30)),
	ai("8011", reqFNC1, "CPID SERIAL", n(1, 12)),
	ai("8012", reqFNC1, "VERSION", x(1, 20)),
	ai("8013", reqFNC1, "GMN", x(1, 25)),
	ai("8017", reqFNC1, "GSRN - PROVIDER", n(18, 18, lintCSum)),
	ai("8018", reqFNC1, "GSRN - RECIPIENT", n(18, 18, lintCSum)),
	ai("8019", reqFNC1, "SRIN", n(1, 10)),
	ai("8020", reqFNC1, "REF NO.", x(1, 25)),
	ai("8026", reqFNC1, "ITIP CONTENT", n(14, 14, lintCSum), n(4, 4)),
	ai("8110", reqFNC1, "", x(1, 70)),
	ai("8111", reqFNC1, "POINTS", n(4, 4)),
	ai("8112", reqFNC1, "", x(1, 70)),
	ai("8200", reqFNC1, "PRODUCT URL", x(1, 70)),
	ai("90", reqFNC1, "INTERNAL", x(1, 30)),
	ai("91", reqFNC1, "INTERNAL", x(1, 90)),
	ai("92", reqFNC1, "INTERNAL", x(1, 90)),
	ai("93", reqFNC1, "INTERNAL", x(1, 90)),
	ai("94", reqFNC1, "INTERNAL", x(1, 90)),
	ai("95", reqFNC1, "INTERNAL", x(1, 90)),
	ai("96", reqFNC1, "INTERNAL", x(1, 90)),
	ai("97", reqFNC1, "INTERNAL", x(1, 90)),
	ai("98", reqFNC1, "INTERNAL", x(1, 90)),
	ai("99", reqFNC1, "INTERNAL", x(1, 90)),
}
